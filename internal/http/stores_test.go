package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoresController_CreateStore(t *testing.T) {
	t.Run("creates store", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/stores", map[string]any{"name": "Central", "address": "1 Main Street"})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody[map[string]any](t, w)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "Central", body["name"])
		assert.Equal(t, "1 Main Street", body["address"])
	})

	t.Run("400 when address missing", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/stores", map[string]any{"name": "Central"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "Name and address are required", body["error"])
	})

	t.Run("400 when name missing", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/stores", map[string]any{"address": "1 Main Street"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStoresController_AddBookToStore(t *testing.T) {
	t.Run("creates listing", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/authors", map[string]any{"name": "George Orwell"})
		doJSON(t, router, "POST", "/authors/1/books", map[string]any{"name": "1984", "pages": 328})
		doJSON(t, router, "POST", "/stores", map[string]any{"name": "Central", "address": "1 Main Street"})

		w := doJSON(t, router, "POST", "/stores/1/books/1", map[string]any{"price": 9.99})

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody[map[string]any](t, w)
		assert.Equal(t, float64(1), body["store_id"])
		assert.Equal(t, float64(1), body["book_id"])
		assert.Equal(t, 9.99, body["price"])
	})

	t.Run("400 when price missing", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/stores/1/books/1", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "Price is required", body["error"])
	})

	t.Run("400 when price negative", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/stores/1/books/1", map[string]any{"price": -5})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "Price must be non-negative", body["error"])
	})

	t.Run("404 when store does not exist", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/authors", map[string]any{"name": "George Orwell"})
		doJSON(t, router, "POST", "/authors/1/books", map[string]any{"name": "1984"})

		w := doJSON(t, router, "POST", "/stores/99/books/1", map[string]any{"price": 5})

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "Store not found", body["error"])
	})

	t.Run("404 when book does not exist", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/stores", map[string]any{"name": "Central", "address": "1 Main Street"})

		w := doJSON(t, router, "POST", "/stores/1/books/99", map[string]any{"price": 5})

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "Book not found", body["error"])
	})
}

func TestStoresController_GetStoreBooks(t *testing.T) {
	t.Run("404 before any listing, one entry after", func(t *testing.T) {
		router, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/authors", map[string]any{"name": "George Orwell"})
		doJSON(t, router, "POST", "/authors/1/books", map[string]any{"name": "1984", "pages": 328})
		doJSON(t, router, "POST", "/stores", map[string]any{"name": "Central", "address": "1 Main Street"})

		w := doJSON(t, router, "GET", "/stores/1/books", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		notFound := decodeBody[map[string]string](t, w)
		assert.Equal(t, "No books found for this store.", notFound["message"])

		w = doJSON(t, router, "POST", "/stores/1/books/1", map[string]any{"price": 9.99})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, "GET", "/stores/1/books", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody[[]map[string]any](t, w)
		require.Len(t, body, 1)
		assert.Equal(t, float64(1), body[0]["id"])
		assert.Equal(t, "1984", body[0]["name"])
		assert.Equal(t, 9.99, body[0]["price"])
	})
}
