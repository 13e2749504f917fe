package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusCompleted         OrderStatus = "completed"
	OrderStatusSubscriptionGrant OrderStatus = "subscription_grant"
	OrderStatusFailed            OrderStatus = "failed"
	OrderStatusRefunded          OrderStatus = "refunded"
)

type Order struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`

	Total         float64
	OriginalTotal float64
	Status        OrderStatus `gorm:"index"`
	ItemCount     int

	GatewayOrderID string `gorm:"index"`
	InvoiceNumber  string `gorm:"uniqueIndex"`

	Items   []OrderItem `gorm:"foreignKey:OrderID"`
	Account Account     `gorm:"foreignKey:AccountID"`
}

// OrderItem is a purchase-time snapshot. Product and license fields are
// copied at capture so a later edit to either never changes what was bought.
type OrderItem struct {
	BaseModel
	OrderID uuid.UUID `gorm:"index;not null"`

	ProductID   uuid.UUID `gorm:"index"`
	ProductType string    // "font" | "bundle" | "plan"
	ProductName string
	ProductSlug string
	ImageURL    string

	UnitPrice     float64
	OriginalPrice *float64
	Quantity      int `gorm:"default:1"`

	LicenseName           string
	LicenseAllowedUses    pq.StringArray `gorm:"type:text[]"`
	LicenseDisallowedUses pq.StringArray `gorm:"type:text[]"`
}
