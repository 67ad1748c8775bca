package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
)

func TestClientAttachesAuthAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]model.Task{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok123"))
	_, err := client.ListTasks(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientOmitsAuthWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Category{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken(""))
	_, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestListTasksCategoryFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]model.Task{{ID: 1, CategoryID: 7}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok"))
	id := uint(7)
	tasks, err := client.ListTasks(context.Background(), &id)
	require.NoError(t, err)
	assert.Equal(t, "category_id=7", gotQuery)
	assert.Len(t, tasks, 1)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("expired"))
	_, err := client.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "invalid token", apiErr.Message)
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "task not found"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok"))
	err := client.DeleteTask(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoginIsFormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret-pass", r.PostForm.Get("password"))
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok", TokenType: "bearer"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken(""))
	token, err := client.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestDeleteHandlesNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, StaticToken("tok"))
	assert.NoError(t, client.DeleteCategory(context.Background(), 3))
}
