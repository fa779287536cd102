package models

// Product is a sellable item in the catalogue.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Price       float64 `gorm:"not null"          json:"price"`
	Description string  `gorm:"type:text"         json:"description"`
}

func (Product) TableName() string { return "products" }
