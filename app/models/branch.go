package models

// Branch is a store location that carries stock.
type Branch struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Address     string `gorm:"type:text"         json:"address"`
	Description string `gorm:"type:text"         json:"description"`
}

func (Branch) TableName() string { return "branches" }
