package migrations

import (
	"github.com/shashiranjanraj/stockpile/app/models"
	"github.com/shashiranjanraj/stockpile/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_products_table", &CreateProductsTable{})
	migration.Register("20260301000001_create_branches_table", &CreateBranchesTable{})
	migration.Register("20260301000002_create_stocks_table", &CreateStocksTable{})
}

// -------- 0001: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0002: branches --------

type CreateBranchesTable struct{}

func (m *CreateBranchesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Branch{})
}

func (m *CreateBranchesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("branches")
}

// -------- 0003: stocks --------

// No foreign keys on stocks: product_id and branch_id are logical
// references only.
type CreateStocksTable struct{}

func (m *CreateStocksTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Stock{})
}

func (m *CreateStocksTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("stocks")
}
