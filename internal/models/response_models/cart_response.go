package response_models

import "github.com/google/uuid"

type CartItemResponse struct {
	Key           string    `json:"key"`
	ProductID     uuid.UUID `json:"productId"`
	ProductType   string    `json:"productType"`
	ProductName   string    `json:"productName"`
	ProductSlug   string    `json:"productSlug"`
	ImageURL      string    `json:"imageUrl"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Quantity      int       `json:"quantity"`
	LicenseID     uuid.UUID `json:"licenseId"`
	LicenseName   string    `json:"licenseName"`
}

// Count, Total and OriginalTotal are always derived from Items, never stored.
type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	Count         int                `json:"count"`
	Total         float64            `json:"total"`
	OriginalTotal float64            `json:"originalTotal"`
	AnonToken     string             `json:"anonToken,omitempty"`
}
