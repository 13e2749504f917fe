package db_models

import "github.com/google/uuid"

// Cart is owned either by an account or by an anonymous token issued on the
// first write. The original platform kept this state in browser storage; it
// is persisted server-side here with the same item identity rules.
type Cart struct {
	BaseModel
	AccountID *uuid.UUID `gorm:"index"`
	AnonToken string     `gorm:"index"`

	Items []CartItem `gorm:"foreignKey:CartID"`
}

type CartItem struct {
	BaseModel
	CartID uuid.UUID `gorm:"index;not null;uniqueIndex:idx_cart_item_key"`

	// Key is "<productID>-<licenseID>". A product+license pair can appear at
	// most once per cart.
	Key string `gorm:"not null;uniqueIndex:idx_cart_item_key"`

	ProductID   uuid.UUID `gorm:"index"`
	ProductType string    // "font" | "bundle"
	ProductName string
	ProductSlug string
	ImageURL    string

	Price         float64
	OriginalPrice *float64
	Quantity      int `gorm:"default:1"`

	LicenseID   uuid.UUID
	LicenseName string
}
