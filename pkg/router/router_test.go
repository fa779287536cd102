package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockpile/pkg/router"
)

func TestRouter_MethodRouting(t *testing.T) {
	r := router.New()

	handler := func(label string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, label)
		}
	}

	r.Get("/items", "items.index", handler("get"))
	r.Post("/items", "items.store", handler("post"))
	r.Put("/items/{id}", "items.update", handler("put"))
	r.Delete("/items/{id}", "items.destroy", handler("delete"))

	cases := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/items", "get"},
		{http.MethodPost, "/items", "post"},
		{http.MethodPut, "/items/1", "put"},
		{http.MethodDelete, "/items/1", "delete"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, tc.want, rec.Body.String())
	}
}

func TestRouter_GroupPrefixes(t *testing.T) {
	r := router.New()

	api := r.Group("/api")
	products := api.Group("/products")
	products.Get("/", "products.index", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	products.Get("/{id}", "products.show", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, chi.URLParam(req, "id"))
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/7", nil))
	assert.Equal(t, "7", rec.Body.String())
}

func TestRouter_NamedURLBuilding(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/products/{id}", "products.show", func(http.ResponseWriter, *http.Request) {})

	url, err := r.URL("products.show", map[string]string{"id": "12"})
	require.NoError(t, err)
	assert.Equal(t, "/api/products/12", url)

	_, err = r.URL("products.show", nil)
	assert.Error(t, err, "missing params must be reported")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestRouter_RoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", func(http.ResponseWriter, *http.Request) {})
	g := r.Group("/api")
	g.Post("/b", "b", func(http.ResponseWriter, *http.Request) {})

	infos := r.Routes()
	require.Len(t, infos, 2)
	assert.Equal(t, router.RouteInfo{Method: http.MethodGet, Path: "/a", Name: "a"}, infos[0])
	assert.Equal(t, router.RouteInfo{Method: http.MethodPost, Path: "/api/b", Name: "b"}, infos[1])
}

func TestRouter_NotFoundHandler(t *testing.T) {
	r := router.New()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	r := router.New()

	tag := func(label string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				fmt.Fprint(w, label)
				next.ServeHTTP(w, req)
			})
		}
	}

	r.Get("/x", "x", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "h")
	}, tag("1"), tag("2"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, "12h", rec.Body.String())
}
