package db_models

import "github.com/lib/pq"

type License struct {
	BaseModel
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string

	// Per-product-type prices added on top of the product price.
	FontPrice   float64
	BundlePrice float64

	AllowedUses    pq.StringArray `gorm:"type:text[]"`
	DisallowedUses pq.StringArray `gorm:"type:text[]"`
}
