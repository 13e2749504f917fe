package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

type CartRepository interface {
	GetByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Cart, error)
	GetByToken(ctx context.Context, token string) (*db_models.Cart, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Cart, error)
	Create(ctx context.Context, cart *db_models.Cart) error
	AddItem(ctx context.Context, item *db_models.CartItem) error
	HasItem(ctx context.Context, cartID uuid.UUID, key string) (bool, error)
	RemoveItem(ctx context.Context, cartID uuid.UUID, key string) error
	Clear(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&cart, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByToken(ctx context.Context, token string) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&cart, "anon_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Create(ctx context.Context, cart *db_models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) AddItem(ctx context.Context, item *db_models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) HasItem(ctx context.Context, cartID uuid.UUID, key string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.CartItem{}).
		Where("cart_id = ? AND key = ?", cartID, key).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RemoveItem never reports a missing key as an error: removal is idempotent.
func (r *cartRepository) RemoveItem(ctx context.Context, cartID uuid.UUID, key string) error {
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND key = ?", cartID, key).
		Delete(&db_models.CartItem{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Clear runs inside the capture transaction when tx is non-nil.
func (r *cartRepository) Clear(ctx context.Context, tx *gorm.DB, cartID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&db_models.CartItem{}).Error
}
