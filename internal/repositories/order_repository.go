package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

const OrderPageSize = 10

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *db_models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page int) ([]db_models.Order, int64, error)
	HasPurchased(ctx context.Context, accountID, productID uuid.UUID) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, tx *gorm.DB, order *db_models.Order) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Account").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page int) ([]db_models.Order, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Order{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * OrderPageSize).
		Limit(OrderPageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// HasPurchased reports whether a completed order of the account contains the
// product.
func (r *orderRepository) HasPurchased(ctx context.Context, accountID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.account_id = ? AND orders.status = ? AND order_items.product_id = ?",
			accountID, db_models.OrderStatusCompleted, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *db_models.Transaction) error
	GetByProviderOrderID(ctx context.Context, providerOrderID string) (*db_models.Transaction, error)
	Update(ctx context.Context, tx *gorm.DB, txn *db_models.Transaction, fields map[string]interface{}) error
	ListStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]db_models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *transactionRepository) GetByProviderOrderID(ctx context.Context, providerOrderID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).First(&txn, "provider_order_id = ?", providerOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *gorm.DB, txn *db_models.Transaction, fields map[string]interface{}) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Model(txn).Updates(fields).Error
}

// ListStalePending feeds the reconciliation sweep: pending transactions old
// enough that the original capture call should long have finished.
func (r *transactionRepository) ListStalePending(ctx context.Context, olderThan time.Duration, limit int) ([]db_models.Transaction, error) {
	cutoff := time.Now().Add(-olderThan).Unix()

	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", db_models.TxnStatusPending, cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
