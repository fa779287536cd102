package repositories

import (
	"github.com/shashiranjanraj/stockpile/app/models"
	"github.com/shashiranjanraj/stockpile/pkg/orm"
	"gorm.io/gorm"
)

// BranchRepository handles database operations for Branch.
type BranchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// All returns every branch. An empty table yields an empty slice, never nil.
func (r *BranchRepository) All() ([]models.Branch, error) {
	branches := make([]models.Branch, 0)
	err := orm.New(r.db).Model(&models.Branch{}).Find(&branches)
	return branches, err
}

// FindByID looks up a branch by primary key.
// Returns gorm.ErrRecordNotFound when the id does not exist.
func (r *BranchRepository) FindByID(id uint) (models.Branch, error) {
	var branch models.Branch
	err := orm.New(r.db).Model(&models.Branch{}).Where("id = ?", id).First(&branch)
	return branch, err
}

// Create inserts a new branch and backfills its generated id.
func (r *BranchRepository) Create(branch *models.Branch) error {
	return orm.New(r.db).Create(branch)
}

// Update overwrites every mutable column of the row at id, zero values
// included. Updating a missing id is not an error.
func (r *BranchRepository) Update(id uint, branch *models.Branch) (int64, error) {
	return orm.New(r.db).
		Model(&models.Branch{}).
		Where("id = ?", id).
		Select("name", "address", "description").
		Updates(branch)
}

// Delete removes the row at id if present. Deleting a missing id is a no-op.
func (r *BranchRepository) Delete(id uint) (int64, error) {
	return orm.New(r.db).Where("id = ?", id).Delete(&models.Branch{})
}
