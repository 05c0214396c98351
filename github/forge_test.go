package github_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/commitgen"
	"github.com/fwojciec/commitgen/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForge_CreateRepository(t *testing.T) {
	t.Parallel()

	t.Run("creates a private repository", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/user/repos", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "widget", body["name"])
			assert.Equal(t, true, body["private"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{
				"name": "widget",
				"clone_url": "https://github.com/me/widget.git",
				"html_url": "https://github.com/me/widget",
				"private": true
			}`))
		}))
		defer srv.Close()

		forge := github.NewForge(srv.URL, "test-token", 5*time.Second)
		repo, err := forge.CreateRepository(context.Background(), commitgen.CreateRepoRequest{
			Name:    "widget",
			Private: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "widget", repo.Name)
		assert.Equal(t, "https://github.com/me/widget.git", repo.CloneURL)
		assert.True(t, repo.Private)
	})

	t.Run("maps error responses to APIError", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"name already exists on this account"}`))
		}))
		defer srv.Close()

		forge := github.NewForge(srv.URL, "test-token", 5*time.Second)
		_, err := forge.CreateRepository(context.Background(), commitgen.CreateRepoRequest{Name: "widget"})

		var apiErr *commitgen.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "github", apiErr.Provider)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "already exists")
	})

	t.Run("rejects empty names locally", func(t *testing.T) {
		t.Parallel()

		forge := github.NewForge("http://unused.invalid", "test-token", time.Second)
		_, err := forge.CreateRepository(context.Background(), commitgen.CreateRepoRequest{})
		assert.ErrorContains(t, err, "name is required")
	})
}
