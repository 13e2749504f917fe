package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

// Transaction is written before the gateway round-trip so a crash between
// capture and order persistence leaves a pending row the reconciler can find.
type Transaction struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"index"`
	CartID    *uuid.UUID `gorm:"index"`
	OrderID   *uuid.UUID `gorm:"index"`

	Amount   float64
	Currency string            `gorm:"size:3"`
	Status   TransactionStatus `gorm:"index"`

	Provider        string `gorm:"index"`
	ProviderOrderID string `gorm:"uniqueIndex"`

	PaidAt *int64

	// Raw gateway receipts and the cart snapshot used to rebuild the order.
	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
