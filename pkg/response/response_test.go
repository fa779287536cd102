package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stockpile/pkg/response"
)

func TestSuccess_RawBodyNoEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Success(rec, map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Created(rec, map[string]string{"name": "Widget"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"name":"Widget"}`, rec.Body.String())
}

func TestNoContent_EmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()
	response.NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestError_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Error(rec, http.StatusInternalServerError, "disk I/O error")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"disk I/O error"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	response.NotFound(rec, "Product not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}
