package seeders

import (
	"github.com/shashiranjanraj/stockpile/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("products", SeedProducts)
	Register("branches", SeedBranches)
	Register("stocks", SeedStocks)
}

// SeedProducts inserts a small sample catalogue. It is not idempotent;
// ids are taken from the sequence like any other insert.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{Name: "Widget", Price: 9.99, Description: "A widget"},
		{Name: "Gadget", Price: 24.50, Description: "A gadget with extras"},
		{Name: "Doohickey", Price: 3.25},
	}
	return db.Create(&products).Error
}

// SeedBranches inserts the sample store locations.
func SeedBranches(db *gorm.DB) error {
	branches := []models.Branch{
		{Name: "Downtown", Address: "1 Main St", Description: "Flagship store"},
		{Name: "Harbour", Address: "14 Dock Rd"},
	}
	return db.Create(&branches).Error
}

// SeedStocks inserts per-branch quantities for the sample catalogue.
// Run after SeedProducts and SeedBranches so the ids line up; there is no
// referential check, so dangling ids would still insert.
func SeedStocks(db *gorm.DB) error {
	stocks := []models.Stock{
		{ProductID: 1, BranchID: 1, Amount: 40},
		{ProductID: 2, BranchID: 1, Amount: 12},
		{ProductID: 1, BranchID: 2, Amount: 7},
		{ProductID: 3, BranchID: 2, Amount: 120},
	}
	return db.Create(&stocks).Error
}
