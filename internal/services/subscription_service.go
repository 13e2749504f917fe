package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/response_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type SubscriptionServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	Status(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionStatusResponse, error)
	HasActive(ctx context.Context, accountID uuid.UUID) (bool, error)
}

type SubscriptionService struct {
	planRepo repositories.PlanRepository
	subRepo  repositories.SubscriptionRepository
}

func NewSubscriptionService(planRepo repositories.PlanRepository, subRepo repositories.SubscriptionRepository) SubscriptionServiceInterface {
	return &SubscriptionService{planRepo: planRepo, subRepo: subRepo}
}

func planResponse(p *db_models.Plan) response_models.PlanResponse {
	var features []string
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &features)
	}
	return response_models.PlanResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Period:      string(p.Period),
		Price:       utils.RoundMoney(p.Price),
		Currency:    p.Currency,
		Features:    features,
		IsActive:    p.IsActive,
	}
}

func (s *SubscriptionService) ListPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := s.planRepo.GetAllActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	res := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		res = append(res, planResponse(&plans[i]))
	}
	return res, nil
}

// Status returns the account's active subscription, or a not-found error when
// none is in effect.
func (s *SubscriptionService) Status(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionStatusResponse, error) {
	sub, err := s.subRepo.GetActiveByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrRecordNotFound
	}

	return &response_models.SubscriptionStatusResponse{
		AccountID: sub.AccountID,
		PlanCode:  sub.Plan.Code,
		PlanName:  sub.Plan.Name,
		Status:    string(sub.Status),
		StartsAt:  sub.StartsAt,
		EndsAt:    sub.EndsAt,
		AutoRenew: sub.AutoRenew,
	}, nil
}

func (s *SubscriptionService) HasActive(ctx context.Context, accountID uuid.UUID) (bool, error) {
	sub, err := s.subRepo.GetActiveByAccount(ctx, accountID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return sub != nil, nil
}
