package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
	"stylishtype/pkg/utils"
)

type stubPlanRepo struct {
	plans []db_models.Plan
}

func (s *stubPlanRepo) GetAllActive(context.Context) ([]db_models.Plan, error) {
	var active []db_models.Plan
	for _, p := range s.plans {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *stubPlanRepo) GetByCode(_ context.Context, code string) (*db_models.Plan, error) {
	for i := range s.plans {
		if s.plans[i].Code == code && s.plans[i].IsActive {
			return &s.plans[i], nil
		}
	}
	return nil, nil
}

type stubSubscriptionRepo struct {
	subs []db_models.Subscription
}

func (s *stubSubscriptionRepo) GetActiveByAccount(_ context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	now := time.Now().Unix()
	for i := range s.subs {
		sub := &s.subs[i]
		if sub.AccountID == accountID && sub.Status == db_models.SubStatusActive && sub.EndsAt > now {
			return sub, nil
		}
	}
	return nil, nil
}

func (s *stubSubscriptionRepo) Create(_ context.Context, _ *gorm.DB, sub *db_models.Subscription) error {
	sub.ID = uuid.New()
	s.subs = append(s.subs, *sub)
	return nil
}

func TestListPlansSkipsInactiveAndDecodesFeatures(t *testing.T) {
	monthly := db_models.Plan{
		Code: "pro_monthly", Name: "Pro Monthly", Period: db_models.PeriodMonth,
		Price: 19, Currency: "USD", IsActive: true,
		Features: datatypes.JSON(`["All fonts","Commercial use"]`),
	}
	monthly.ID = uuid.New()
	retired := db_models.Plan{Code: "legacy", Name: "Legacy", IsActive: false}
	retired.ID = uuid.New()

	svc := NewSubscriptionService(&stubPlanRepo{plans: []db_models.Plan{monthly, retired}}, &stubSubscriptionRepo{})

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "pro_monthly", plans[0].Code)
	assert.Equal(t, []string{"All fonts", "Commercial use"}, plans[0].Features)
}

func TestSubscriptionStatus(t *testing.T) {
	accountID := uuid.New()

	plan := db_models.Plan{Code: "pro_yearly", Name: "Pro Yearly", IsActive: true}
	plan.ID = uuid.New()

	sub := db_models.Subscription{
		AccountID: accountID,
		PlanID:    plan.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  time.Now().Unix(),
		EndsAt:    time.Now().AddDate(1, 0, 0).Unix(),
		AutoRenew: true,
		Plan:      plan,
	}
	sub.ID = uuid.New()

	svc := NewSubscriptionService(&stubPlanRepo{}, &stubSubscriptionRepo{subs: []db_models.Subscription{sub}})

	status, err := svc.Status(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, "pro_yearly", status.PlanCode)
	assert.Equal(t, "active", status.Status)
	assert.True(t, status.AutoRenew)

	_, err = svc.Status(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)

	ok, err := svc.HasActive(context.Background(), accountID)
	require.NoError(t, err)
	assert.True(t, ok)
}
