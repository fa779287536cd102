package models

// Stock is the quantity of one product held at one branch.
//
// ProductID and BranchID are logical references only: no foreign-key
// constraint is declared, a row may point at ids that do not exist, and
// several rows may exist for the same (product_id, branch_id) pair. Each
// row is addressed by its own id.
type Stock struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint `gorm:"column:product_id;not null" json:"product_id"`
	BranchID  uint `gorm:"column:branch_id;not null"  json:"branch_id"`
	Amount    int  `gorm:"not null" json:"amount"`
}

func (Stock) TableName() string { return "stocks" }
