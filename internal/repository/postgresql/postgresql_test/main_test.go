package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var testDB *TestDatabaseSetup

func TestMain(m *testing.M) {
	setup, err := NewTestDatabase(context.Background())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if setup == nil {
		fmt.Println("TEST_DATABASE_URL not set, skipping PostgreSQL repository tests")
		os.Exit(0)
	}
	testDB = setup

	code := m.Run()
	testDB.Close()
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	require.NoError(t, testDB.TruncateAllTables(context.Background()))
}

func strPtr(s string) *string { return &s }
