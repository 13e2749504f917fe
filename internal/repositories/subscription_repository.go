package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

type SubscriptionRepository interface {
	GetActiveByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
	Create(ctx context.Context, tx *gorm.DB, sub *db_models.Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetActiveByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ? AND status = ? AND ends_at > ?",
			accountID, db_models.SubStatusActive, time.Now().Unix()).
		Order("ends_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, tx *gorm.DB, sub *db_models.Subscription) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(sub).Error
}
