package repositories

import (
	"github.com/shashiranjanraj/stockpile/app/models"
	"github.com/shashiranjanraj/stockpile/pkg/orm"
	"gorm.io/gorm"
)

// StockRepository handles database operations for Stock.
//
// It performs no referential checks: product_id and branch_id are stored
// as given, whether or not matching rows exist.
type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// All returns every stock row. An empty table yields an empty slice, never nil.
func (r *StockRepository) All() ([]models.Stock, error) {
	stocks := make([]models.Stock, 0)
	err := orm.New(r.db).Model(&models.Stock{}).Find(&stocks)
	return stocks, err
}

// FindByID looks up a stock row by primary key.
// Returns gorm.ErrRecordNotFound when the id does not exist.
func (r *StockRepository) FindByID(id uint) (models.Stock, error) {
	var stock models.Stock
	err := orm.New(r.db).Model(&models.Stock{}).Where("id = ?", id).First(&stock)
	return stock, err
}

// Create inserts a new stock row and backfills its generated id.
func (r *StockRepository) Create(stock *models.Stock) error {
	return orm.New(r.db).Create(stock)
}

// Update overwrites every mutable column of the row at id, zero values
// included. Updating a missing id is not an error.
func (r *StockRepository) Update(id uint, stock *models.Stock) (int64, error) {
	return orm.New(r.db).
		Model(&models.Stock{}).
		Where("id = ?", id).
		Select("product_id", "branch_id", "amount").
		Updates(stock)
}

// Delete removes the row at id if present. Deleting a missing id is a no-op.
func (r *StockRepository) Delete(id uint) (int64, error) {
	return orm.New(r.db).Where("id = ?", id).Delete(&models.Stock{})
}
