package db_models

import "gorm.io/datatypes"

type BillingPeriod string

const (
	PeriodMonth BillingPeriod = "month"
	PeriodYear  BillingPeriod = "year"
)

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // e.g. "pro_monthly", "pro_yearly"
	Name        string
	Description *string
	Period      BillingPeriod
	Price       float64
	Currency    string `gorm:"size:3"`
	IsActive    bool   `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
