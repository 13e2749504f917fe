package request_models

type CreateCheckoutRequest struct {
	// PlanCode switches the checkout from cart purchase to plan subscription.
	PlanCode string `json:"plan_code"`
}

type CaptureCheckoutRequest struct {
	GatewayOrderID string `json:"gateway_order_id" binding:"required"`
}
