package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/stockpile/app/models"
	"github.com/shashiranjanraj/stockpile/app/repositories"
	"github.com/shashiranjanraj/stockpile/pkg/logger"
	"github.com/shashiranjanraj/stockpile/pkg/response"
	"gorm.io/gorm"
)

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		repo: repositories.NewProductRepository(db),
	}
}

// Index handles GET /api/products.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.repo.All()
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Product not found")
		return
	}

	product, err := c.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w, "Product not found")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, product)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	product.ID = 0 // the id is always assigned by the store

	if err := c.repo.Create(&product); err != nil {
		response.ServerError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product created", "product_id", product.ID)
	response.Created(w, product)
}

// Update handles PUT /api/products/{id}. Every mutable field is replaced
// with the submitted value and the submitted state is echoed back, whether
// or not a row at id existed.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	product.ID = id

	if _, err := c.repo.Update(id, &product); err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, product)
}

// Destroy handles DELETE /api/products/{id}. Deleting an absent id still
// responds 204.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	if _, err := c.repo.Delete(id); err != nil {
		response.ServerError(w, err)
		return
	}
	response.NoContent(w)
}
