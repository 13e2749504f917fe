package db_models

// Discount is applied at read time; a discounted price is never stored.
type Discount struct {
	BaseModel
	Name       string  `gorm:"not null"`
	Percentage float64 `gorm:"not null"`
}
