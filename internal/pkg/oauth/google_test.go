package oauth

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestGoogleService(userInfoURL string) *googleServiceImpl {
	svc := NewGoogleService("client-id", "client-secret", "http://localhost:8080/callback", []string{"email", "profile"}).(*googleServiceImpl)
	svc.userInfoURL = userInfoURL
	return svc
}

func TestGenerateState(t *testing.T) {
	svc := newTestGoogleService("")

	first, err := svc.GenerateState("agent/1.0")
	require.NoError(t, err)
	second, err := svc.GenerateState("agent/1.0")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	raw, err := base64.URLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(raw), ".agent/1.0"))
}

func TestRedirectURL(t *testing.T) {
	svc := newTestGoogleService("")

	parsed, err := url.Parse(svc.RedirectURL("abc"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "abc", parsed.Query().Get("state"))
	assert.Equal(t, "offline", parsed.Query().Get("access_type"))
	assert.Equal(t, "email profile", parsed.Query().Get("scope"))
}

func TestVerifyUser(t *testing.T) {
	t.Run("decodes profile", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer access-123", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"g-1","email":"sari@example.com","verified_email":true,"name":"Sari Lestari","picture":"https://img.example.com/sari.png"}`))
		}))
		defer server.Close()

		info, err := newTestGoogleService(server.URL).VerifyUser(context.Background(), &oauth2.Token{AccessToken: "access-123"})
		require.NoError(t, err)
		assert.Equal(t, GoogleInformation{
			GoogleID:      "g-1",
			Email:         "sari@example.com",
			VerifiedEmail: true,
			Name:          "Sari Lestari",
			Picture:       "https://img.example.com/sari.png",
		}, info)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestGoogleService(server.URL).VerifyUser(context.Background(), &oauth2.Token{AccessToken: "expired"})
		assert.ErrorContains(t, err, "status 401")
	})

	t.Run("missing email", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"g-1"}`))
		}))
		defer server.Close()

		_, err := newTestGoogleService(server.URL).VerifyUser(context.Background(), &oauth2.Token{AccessToken: "access-123"})
		assert.Error(t, err)
	})
}
