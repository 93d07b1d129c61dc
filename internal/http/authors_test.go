package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorsController_CreateAuthor(t *testing.T) {
	t.Run("creates author", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/authors", map[string]any{"name": "George Orwell"})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody[map[string]any](t, w)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "George Orwell", body["name"])
	})

	t.Run("rejects empty name", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/authors", map[string]any{"name": ""})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "Name is required", body["error"])
	})
}

func TestAuthorsController_CreateBook(t *testing.T) {
	t.Run("creates book under existing author", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/authors", map[string]any{"name": "George Orwell"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, "POST", "/authors/1/books", map[string]any{"name": "1984", "pages": 328})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody[map[string]any](t, w)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "1984", body["name"])
		assert.Equal(t, float64(328), body["pages"])
		assert.Equal(t, float64(1), body["author_id"])
	})

	t.Run("404 when author does not exist", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/authors/99/books", map[string]any{"name": "1984"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "Author not found", body["error"])
	})

	t.Run("400 on invalid author ID", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/authors/abc/books", map[string]any{"name": "1984"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorsController_GetAuthorBooks(t *testing.T) {
	t.Run("returns created books", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/authors", map[string]any{"name": "George Orwell"})
		doJSON(t, router, "POST", "/authors/1/books", map[string]any{"name": "1984", "pages": 328})
		doJSON(t, router, "POST", "/authors/1/books", map[string]any{"name": "Animal Farm"})

		w := doJSON(t, router, "GET", "/authors/1/books", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody[[]map[string]any](t, w)
		require.Len(t, body, 2)

		names := []string{body[0]["name"].(string), body[1]["name"].(string)}
		assert.Contains(t, names, "1984")
		assert.Contains(t, names, "Animal Farm")
	})

	t.Run("404 when author has no books", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/authors", map[string]any{"name": "George Orwell"})

		w := doJSON(t, router, "GET", "/authors/1/books", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "No books found for this author.", body["message"])
	})
}
