package services

import (
	"context"

	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/response_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type OrderServiceInterface interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, page int) (response_models.OrderListResponse, error)
	Detail(ctx context.Context, accountID, orderID uuid.UUID) (response_models.OrderResponse, error)

	// GetOwned returns the full order row for document rendering; callers get
	// a forbidden error for orders that are not theirs.
	GetOwned(ctx context.Context, accountID, orderID uuid.UUID) (*db_models.Order, error)
}

type OrderService struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) OrderServiceInterface {
	return &OrderService{orderRepo: orderRepo}
}

func orderResponse(o *db_models.Order, withItems bool) response_models.OrderResponse {
	res := response_models.OrderResponse{
		ID:            o.ID,
		InvoiceNumber: o.InvoiceNumber,
		Total:         o.Total,
		OriginalTotal: o.OriginalTotal,
		Status:        string(o.Status),
		ItemCount:     o.ItemCount,
		CreatedAt:     o.CreatedAt,
	}
	if !withItems {
		return res
	}

	res.Items = make([]response_models.OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		res.Items = append(res.Items, response_models.OrderItemResponse{
			ProductName:           item.ProductName,
			ProductType:           item.ProductType,
			ImageURL:              item.ImageURL,
			UnitPrice:             item.UnitPrice,
			OriginalPrice:         item.OriginalPrice,
			Quantity:              item.Quantity,
			LicenseName:           item.LicenseName,
			LicenseAllowedUses:    item.LicenseAllowedUses,
			LicenseDisallowedUses: item.LicenseDisallowedUses,
		})
	}
	return res
}

func (s *OrderService) ListByAccount(ctx context.Context, accountID uuid.UUID, page int) (response_models.OrderListResponse, error) {
	orders, count, err := s.orderRepo.ListByAccount(ctx, accountID, page)
	if err != nil {
		return response_models.OrderListResponse{}, utils.ErrDatabaseError
	}

	res := response_models.OrderListResponse{
		Orders:     make([]response_models.OrderResponse, 0, len(orders)),
		TotalPages: repositories.TotalPages(count, repositories.OrderPageSize),
	}
	for i := range orders {
		res.Orders = append(res.Orders, orderResponse(&orders[i], false))
	}
	return res, nil
}

func (s *OrderService) Detail(ctx context.Context, accountID, orderID uuid.UUID) (response_models.OrderResponse, error) {
	order, err := s.GetOwned(ctx, accountID, orderID)
	if err != nil {
		return response_models.OrderResponse{}, err
	}
	return orderResponse(order, true), nil
}

func (s *OrderService) GetOwned(ctx context.Context, accountID, orderID uuid.UUID) (*db_models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrRecordNotFound
	}
	if order.AccountID != accountID {
		return nil, utils.ErrForbidden
	}
	return order, nil
}
