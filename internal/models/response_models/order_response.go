package response_models

import "github.com/google/uuid"

type OrderItemResponse struct {
	ProductName           string   `json:"productName"`
	ProductType           string   `json:"productType"`
	ImageURL              string   `json:"imageUrl,omitempty"`
	UnitPrice             float64  `json:"unitPrice"`
	OriginalPrice         *float64 `json:"originalPrice,omitempty"`
	Quantity              int      `json:"quantity"`
	LicenseName           string   `json:"licenseName,omitempty"`
	LicenseAllowedUses    []string `json:"licenseAllowedUses,omitempty"`
	LicenseDisallowedUses []string `json:"licenseDisallowedUses,omitempty"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	InvoiceNumber string              `json:"invoiceNumber"`
	Total         float64             `json:"total"`
	OriginalTotal float64             `json:"originalTotal"`
	Status        string              `json:"status"`
	ItemCount     int                 `json:"itemCount"`
	CreatedAt     int64               `json:"createdAt"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	TotalPages int             `json:"totalPages"`
}

type CheckoutResponse struct {
	GatewayOrderID string  `json:"gateway_order_id"`
	Amount         float64 `json:"amount"`
	Provider       string  `json:"provider"`
}

type CaptureResponse struct {
	OrderID       uuid.UUID `json:"order_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Status        string    `json:"status"`
}
