package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
	"stylishtype/pkg/utils"
)

type stubOrderRepo struct {
	orders []db_models.Order
}

func (s *stubOrderRepo) Create(_ context.Context, _ *gorm.DB, order *db_models.Order) error {
	order.ID = uuid.New()
	s.orders = append(s.orders, *order)
	return nil
}

func (s *stubOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*db_models.Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return &s.orders[i], nil
		}
	}
	return nil, nil
}

func (s *stubOrderRepo) HasPurchased(_ context.Context, accountID, productID uuid.UUID) (bool, error) {
	for _, o := range s.orders {
		if o.AccountID != accountID || o.Status != db_models.OrderStatusCompleted {
			continue
		}
		for _, item := range o.Items {
			if item.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *stubOrderRepo) ListByAccount(_ context.Context, accountID uuid.UUID, _ int) ([]db_models.Order, int64, error) {
	var out []db_models.Order
	for _, o := range s.orders {
		if o.AccountID == accountID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func TestOrderDetailEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	order := db_models.Order{
		AccountID:     owner,
		InvoiceNumber: "INV-20260901-ABCDEF01",
		Total:         20,
		Status:        db_models.OrderStatusCompleted,
		Items: []db_models.OrderItem{
			{ProductName: "Grotesk One", UnitPrice: 20, Quantity: 1, LicenseName: "Desktop"},
		},
	}
	order.ID = uuid.New()

	svc := NewOrderService(&stubOrderRepo{orders: []db_models.Order{order}})

	res, err := svc.Detail(context.Background(), owner, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-20260901-ABCDEF01", res.InvoiceNumber)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Desktop", res.Items[0].LicenseName)

	_, err = svc.Detail(context.Background(), stranger, order.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.Detail(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestOrderListOnlyOwn(t *testing.T) {
	owner := uuid.New()

	mine := db_models.Order{AccountID: owner, InvoiceNumber: "INV-A", Status: db_models.OrderStatusCompleted}
	mine.ID = uuid.New()
	other := db_models.Order{AccountID: uuid.New(), InvoiceNumber: "INV-B", Status: db_models.OrderStatusCompleted}
	other.ID = uuid.New()

	svc := NewOrderService(&stubOrderRepo{orders: []db_models.Order{mine, other}})

	res, err := svc.ListByAccount(context.Background(), owner, 1)
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "INV-A", res.Orders[0].InvoiceNumber)
}
