package request_models

import "github.com/google/uuid"

type AddCartItemRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ProductType string    `json:"product_type" binding:"required,oneof=font bundle"`
	LicenseID   uuid.UUID `json:"license_id" binding:"required"`
}
