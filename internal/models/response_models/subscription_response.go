package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Period      string    `json:"period"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Features    []string  `json:"features,omitempty"`
	IsActive    bool      `json:"is_active"`
}

type SubscriptionStatusResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	PlanCode  string    `json:"plan_code"`
	PlanName  string    `json:"plan_name"`
	Status    string    `json:"status"`
	StartsAt  int64     `json:"starts_at"`
	EndsAt    int64     `json:"ends_at"`
	AutoRenew bool      `json:"auto_renew"`
}
