package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_CRUDLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create.
	rec := do(t, srv, http.MethodPost, "/api/products",
		map[string]interface{}{"name": "Widget", "price": 9.99, "description": "A widget"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "Widget", created["name"])
	assert.Equal(t, 9.99, created["price"])
	assert.Equal(t, "A widget", created["description"])

	// Read back the same object.
	rec = do(t, srv, http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode(t, rec))

	// Listed.
	rec = do(t, srv, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	// Delete.
	rec = do(t, srv, http.MethodDelete, "/api/products/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Gone.
	rec = do(t, srv, http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "Product not found"}, decode(t, rec))
}

func TestProducts_EmptyListIsArray(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, isJSONArray(rec), "empty collection must serialise as [], got %q", rec.Body.String())
	assert.Len(t, decodeList(t, rec), 0)
}

func TestProducts_CreateAcceptsMissingFields(t *testing.T) {
	srv := newTestServer(t)

	// No validation layer: an empty body row is stored with zero values.
	rec := do(t, srv, http.MethodPost, "/api/products", map[string]interface{}{})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, "", created["name"])
	assert.Equal(t, float64(0), created["price"])
}

func TestProducts_CreateIgnoresClientSuppliedID(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/products",
		map[string]interface{}{"id": 99, "name": "Widget", "price": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["id"], "ids come from the store, not the client")
}

func TestProducts_MalformedBodyRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/products", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")
}

func TestProducts_UpdateMissingIDSynthesizesResponse(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPut, "/api/products/42",
		map[string]interface{}{"name": "Ghost", "price": 5, "description": ""})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(42), body["id"])
	assert.Equal(t, "Ghost", body["name"])

	// Nothing was created or modified.
	rec = do(t, srv, http.MethodGet, "/api/products", nil)
	assert.Len(t, decodeList(t, rec), 0)
	rec = do(t, srv, http.MethodGet, "/api/products/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProducts_NonNumericID(t *testing.T) {
	srv := newTestServer(t)

	// A lookup with a garbage id reads the same as a lookup that found
	// nothing, while writes reject the id outright.
	rec := do(t, srv, http.MethodGet, "/api/products/abc", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]interface{}{"error": "Product not found"}, decode(t, rec))

	rec = do(t, srv, http.MethodPut, "/api/products/abc",
		map[string]interface{}{"name": "Widget", "price": 1, "description": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")

	rec = do(t, srv, http.MethodDelete, "/api/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec), "error")
}

func TestHome_LivenessString(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "API is running", rec.Body.String())
}
