package routes

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/stockpile/app/controllers"
	"github.com/shashiranjanraj/stockpile/pkg/metrics"
	"github.com/shashiranjanraj/stockpile/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI binds every route the server exposes: the liveness root, the
// prometheus endpoint, the three CRUD resources under /api, and the static
// client bundle fallback when one is present on disk.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	products := controllers.NewProductController(db)
	branches := controllers.NewBranchController(db)
	stocks := controllers.NewStockController(db)

	r.Get("/", "home", homeHandler())
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")

	p := api.Group("/products")
	p.Get("/", "products.index", products.Index)
	p.Get("/{id}", "products.show", products.Show)
	p.Post("/", "products.store", products.Store)
	p.Put("/{id}", "products.update", products.Update)
	p.Delete("/{id}", "products.destroy", products.Destroy)

	b := api.Group("/branches")
	b.Get("/", "branches.index", branches.Index)
	b.Get("/{id}", "branches.show", branches.Show)
	b.Post("/", "branches.store", branches.Store)
	b.Put("/{id}", "branches.update", branches.Update)
	b.Delete("/{id}", "branches.destroy", branches.Destroy)

	s := api.Group("/stocks")
	s.Get("/", "stocks.index", stocks.Index)
	s.Get("/{id}", "stocks.show", stocks.Show)
	s.Post("/", "stocks.store", stocks.Store)
	s.Put("/{id}", "stocks.update", stocks.Update)
	s.Delete("/{id}", "stocks.destroy", stocks.Destroy)

	registerClient(r)
}

// homeHandler serves the client entry document when a bundle is present,
// and a plain-text liveness string otherwise.
func homeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if index, ok := clientIndex(); ok {
			http.ServeFile(w, r, index)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "API is running")
	}
}
