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

type StockController struct {
	repo *repositories.StockRepository
}

func NewStockController(db *gorm.DB) *StockController {
	return &StockController{
		repo: repositories.NewStockRepository(db),
	}
}

// Index handles GET /api/stocks.
func (c *StockController) Index(w http.ResponseWriter, r *http.Request) {
	stocks, err := c.repo.All()
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, stocks)
}

// Show handles GET /api/stocks/{id}.
func (c *StockController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Stock not found")
		return
	}

	stock, err := c.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w, "Stock not found")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, stock)
}

// Store handles POST /api/stocks. The referenced product_id and branch_id
// are not checked for existence.
func (c *StockController) Store(w http.ResponseWriter, r *http.Request) {
	var stock models.Stock
	if err := json.NewDecoder(r.Body).Decode(&stock); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	stock.ID = 0

	if err := c.repo.Create(&stock); err != nil {
		response.ServerError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("stock created",
		"stock_id", stock.ID,
		"product_id", stock.ProductID,
		"branch_id", stock.BranchID,
	)
	response.Created(w, stock)
}

// Update handles PUT /api/stocks/{id}. Wholesale replacement; the
// submitted state is echoed back whether or not a row at id existed.
func (c *StockController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	var stock models.Stock
	if err := json.NewDecoder(r.Body).Decode(&stock); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	stock.ID = id

	if _, err := c.repo.Update(id, &stock); err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, stock)
}

// Destroy handles DELETE /api/stocks/{id}.
func (c *StockController) Destroy(w http.ResponseWriter, r *http.Request) {
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
