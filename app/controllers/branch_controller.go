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

type BranchController struct {
	repo *repositories.BranchRepository
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{
		repo: repositories.NewBranchRepository(db),
	}
}

// Index handles GET /api/branches.
func (c *BranchController) Index(w http.ResponseWriter, r *http.Request) {
	branches, err := c.repo.All()
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, branches)
}

// Show handles GET /api/branches/{id}.
func (c *BranchController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Branch not found")
		return
	}

	branch, err := c.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFound(w, "Branch not found")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, branch)
}

// Store handles POST /api/branches.
func (c *BranchController) Store(w http.ResponseWriter, r *http.Request) {
	var branch models.Branch
	if err := json.NewDecoder(r.Body).Decode(&branch); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	branch.ID = 0

	if err := c.repo.Create(&branch); err != nil {
		response.ServerError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("branch created", "branch_id", branch.ID)
	response.Created(w, branch)
}

// Update handles PUT /api/branches/{id}. Wholesale replacement; the
// submitted state is echoed back whether or not a row at id existed.
func (c *BranchController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	var branch models.Branch
	if err := json.NewDecoder(r.Body).Decode(&branch); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	branch.ID = id

	if _, err := c.repo.Update(id, &branch); err != nil {
		response.ServerError(w, err)
		return
	}
	response.Success(w, branch)
}

// Destroy handles DELETE /api/branches/{id}.
func (c *BranchController) Destroy(w http.ResponseWriter, r *http.Request) {
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
