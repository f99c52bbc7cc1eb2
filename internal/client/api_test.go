package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/kith-app/kith/pkg/domain-errors"
)

func TestAPI_DeleteAccount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/delete-account", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	err := NewAPI(srv.URL).DeleteAccount(context.Background(), "session-token")
	require.NoError(t, err)
}

func TestAPI_DeleteAccount_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid or expired token"}`))
	}))
	defer srv.Close()

	err := NewAPI(srv.URL).DeleteAccount(context.Background(), "stale-token")
	require.Error(t, err)
	assert.True(t, derrors.HasCode(err, derrors.CodeUnauthorized))
	assert.Equal(t, "invalid or expired token", derrors.MessageOf(err))
}

func TestAPI_DeleteAccount_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to delete user data"}`))
	}))
	defer srv.Close()

	err := NewAPI(srv.URL).DeleteAccount(context.Background(), "session-token")
	require.Error(t, err)
	assert.True(t, derrors.HasCode(err, derrors.CodeInternal))
	assert.Equal(t, "failed to delete user data", derrors.MessageOf(err))
}

func TestAPI_DeleteAccount_Unreachable(t *testing.T) {
	err := NewAPI("http://127.0.0.1:1").DeleteAccount(context.Background(), "session-token")
	require.Error(t, err)
	assert.True(t, derrors.HasCode(err, derrors.CodeInternal))
}
