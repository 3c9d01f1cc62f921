package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/taskboard-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository(t *testing.T) {
	resetTables(t)
	ctx := context.Background()
	users := postgresql.NewUserRepository(testDB.DB)
	repo := postgresql.NewEmployeeRepository(testDB.DB)

	u, err := users.Create(ctx, user.User{Email: "zara@example.com"})
	require.NoError(t, err)

	zara, err := repo.Create(ctx, employee.Employee{UserID: &u.ID, FullName: "Zara Putri", Email: strPtr("zara@example.com")})
	require.NoError(t, err)
	andi, err := repo.Create(ctx, employee.Employee{FullName: "Andi Wijaya"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, andi.ID, list[0].ID)
	assert.Equal(t, zara.ID, list[1].ID)

	byUser, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, zara.ID, byUser.ID)

	byID, err := repo.GetByID(ctx, andi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", byID.FullName)

	_, err = repo.GetByID(ctx, "emp-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
