package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/api"
	"taskflow/internal/model"
)

func TestInitWithoutStateFile(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Init())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}

func TestCredentialsSurviveRestart(t *testing.T) {
	dir := t.TempDir()

	s := New(dir)
	require.NoError(t, s.Init())
	require.NoError(t, s.SetCredentials("tok123", &model.User{ID: 1, Username: "alice"}))

	// A fresh session over the same state dir hydrates the same state.
	s2 := New(dir)
	require.NoError(t, s2.Init())
	assert.Equal(t, "tok123", s2.Token())
	require.NotNil(t, s2.User())
	assert.Equal(t, "alice", s2.User().Username)
}

func TestTeardownClearsEverything(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.SetCredentials("tok123", &model.User{ID: 1}))

	s.Teardown()
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())

	_, err := os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidateRefreshesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(model.User{ID: 1, Username: "alice", Email: "alice@example.com"})
	}))
	defer srv.Close()

	s := New(t.TempDir())
	require.NoError(t, s.SetCredentials("tok123", nil))
	client := api.NewClient(srv.URL, s)

	user, err := s.Validate(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice", s.User().Username)
}

func TestValidateWithoutToken(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Validate(context.Background(), api.NewClient("http://unused", s))
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestValidateTearsDownOnUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer srv.Close()

	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.SetCredentials("expired", &model.User{ID: 1}))
	client := api.NewClient(srv.URL, s)

	_, err := s.Validate(context.Background(), client)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
}
