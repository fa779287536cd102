package repositories

import (
	"github.com/shashiranjanraj/stockpile/app/models"
	"github.com/shashiranjanraj/stockpile/pkg/orm"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// All returns every product. An empty table yields an empty slice, never nil.
func (r *ProductRepository) All() ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := orm.New(r.db).Model(&models.Product{}).Find(&products)
	return products, err
}

// FindByID looks up a product by primary key.
// Returns gorm.ErrRecordNotFound when the id does not exist.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.New(r.db).Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Create inserts a new product and backfills its generated id.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.New(r.db).Create(product)
}

// Update overwrites every mutable column of the row at id with the given
// values, zero values included. The affected-row count is returned so the
// caller can tell whether id existed; updating a missing id is not an error.
func (r *ProductRepository) Update(id uint, product *models.Product) (int64, error) {
	return orm.New(r.db).
		Model(&models.Product{}).
		Where("id = ?", id).
		Select("name", "price", "description").
		Updates(product)
}

// Delete removes the row at id if present. Deleting a missing id is a no-op.
func (r *ProductRepository) Delete(id uint) (int64, error) {
	return orm.New(r.db).Where("id = ?", id).Delete(&models.Product{})
}
