package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/models/response_models"
	"stylishtype/internal/paypal"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

const checkoutCurrency = "USD"

type checkoutMeta struct {
	Type     string     `json:"type"` // "cart" | "plan"
	CartID   *uuid.UUID `json:"cart_id,omitempty"`
	PlanID   *uuid.UUID `json:"plan_id,omitempty"`
	PlanCode string     `json:"plan_code,omitempty"`
	OrderID  *uuid.UUID `json:"order_id,omitempty"`
}

type CheckoutServiceInterface interface {
	CreateOrder(ctx context.Context, accountID uuid.UUID, req request_models.CreateCheckoutRequest) (response_models.CheckoutResponse, error)
	CaptureOrder(ctx context.Context, accountID uuid.UUID, req request_models.CaptureCheckoutRequest) (response_models.CaptureResponse, error)

	// FinalizePaid is shared with the reconciliation sweep: given a gateway
	// order that completed, it writes the paid transaction and the order in
	// one database transaction.
	FinalizePaid(ctx context.Context, txn *db_models.Transaction, receipt []byte) (*db_models.Order, error)
}

type CheckoutService struct {
	db          *gorm.DB
	gateway     *paypal.Client
	cartRepo    repositories.CartRepository
	txnRepo     repositories.TransactionRepository
	orderRepo   repositories.OrderRepository
	planRepo    repositories.PlanRepository
	subRepo     repositories.SubscriptionRepository
	fontRepo    repositories.FontRepository
	bundleRepo  repositories.BundleRepository
	licenseRepo repositories.LicenseRepository
	mail        MailServiceInterface
}

func NewCheckoutService(
	db *gorm.DB,
	gateway *paypal.Client,
	cartRepo repositories.CartRepository,
	txnRepo repositories.TransactionRepository,
	orderRepo repositories.OrderRepository,
	planRepo repositories.PlanRepository,
	subRepo repositories.SubscriptionRepository,
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	licenseRepo repositories.LicenseRepository,
	mail MailServiceInterface,
) CheckoutServiceInterface {
	return &CheckoutService{
		db:          db,
		gateway:     gateway,
		cartRepo:    cartRepo,
		txnRepo:     txnRepo,
		orderRepo:   orderRepo,
		planRepo:    planRepo,
		subRepo:     subRepo,
		fontRepo:    fontRepo,
		bundleRepo:  bundleRepo,
		licenseRepo: licenseRepo,
		mail:        mail,
	}
}

func (s *CheckoutService) CreateOrder(ctx context.Context, accountID uuid.UUID, req request_models.CreateCheckoutRequest) (response_models.CheckoutResponse, error) {
	var (
		amount float64
		meta   checkoutMeta
	)

	if req.PlanCode != "" {
		plan, err := s.planRepo.GetByCode(ctx, req.PlanCode)
		if err != nil {
			return response_models.CheckoutResponse{}, utils.ErrDatabaseError
		}
		if plan == nil {
			return response_models.CheckoutResponse{}, utils.ErrRecordNotFound
		}
		amount = plan.Price
		meta = checkoutMeta{Type: "plan", PlanID: &plan.ID, PlanCode: plan.Code}
	} else {
		cart, err := s.cartRepo.GetByAccount(ctx, accountID)
		if err != nil {
			return response_models.CheckoutResponse{}, utils.ErrDatabaseError
		}
		if cart == nil || len(cart.Items) == 0 {
			return response_models.CheckoutResponse{}, utils.ErrCartEmpty
		}
		amount = cartResponse(cart).Total
		meta = checkoutMeta{Type: "cart", CartID: &cart.ID}
	}

	gwOrder, err := s.gateway.CreateOrder(ctx, amount, checkoutCurrency)
	if err != nil {
		return response_models.CheckoutResponse{}, fmt.Errorf("%w: %v", utils.ErrGatewayError, err)
	}

	metaJSON, _ := json.Marshal(meta)
	txn := &db_models.Transaction{
		AccountID:       accountID,
		CartID:          meta.CartID,
		Amount:          utils.RoundMoney(amount),
		Currency:        checkoutCurrency,
		Status:          db_models.TxnStatusPending,
		Provider:        "paypal",
		ProviderOrderID: gwOrder.ID,
		Metadata:        metaJSON,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return response_models.CheckoutResponse{}, utils.ErrDatabaseError
	}

	return response_models.CheckoutResponse{
		GatewayOrderID: gwOrder.ID,
		Amount:         txn.Amount,
		Provider:       "paypal",
	}, nil
}

func (s *CheckoutService) CaptureOrder(ctx context.Context, accountID uuid.UUID, req request_models.CaptureCheckoutRequest) (response_models.CaptureResponse, error) {
	txn, err := s.txnRepo.GetByProviderOrderID(ctx, req.GatewayOrderID)
	if err != nil {
		return response_models.CaptureResponse{}, utils.ErrDatabaseError
	}
	if txn == nil || txn.AccountID != accountID {
		return response_models.CaptureResponse{}, utils.ErrRecordNotFound
	}

	// Idempotent: a transaction already finalized returns its order.
	if txn.Status == db_models.TxnStatusPaid {
		var meta checkoutMeta
		_ = json.Unmarshal(txn.Metadata, &meta)
		if meta.OrderID != nil {
			order, err := s.orderRepo.GetByID(ctx, *meta.OrderID)
			if err == nil && order != nil {
				return response_models.CaptureResponse{
					OrderID:       order.ID,
					InvoiceNumber: order.InvoiceNumber,
					Status:        string(order.Status),
				}, nil
			}
		}
		return response_models.CaptureResponse{}, utils.ErrOrderNotPayable
	}
	if txn.Status != db_models.TxnStatusPending {
		return response_models.CaptureResponse{}, utils.ErrOrderNotPayable
	}

	capture, err := s.gateway.CaptureOrder(ctx, req.GatewayOrderID)
	if err != nil {
		return response_models.CaptureResponse{}, fmt.Errorf("%w: %v", utils.ErrGatewayError, err)
	}

	order, err := s.FinalizePaid(ctx, txn, capture.Raw)
	if err != nil {
		return response_models.CaptureResponse{}, utils.ErrDatabaseError
	}

	go s.sendReceipt(order.ID)

	return response_models.CaptureResponse{
		OrderID:       order.ID,
		InvoiceNumber: order.InvoiceNumber,
		Status:        string(order.Status),
	}, nil
}

// FinalizePaid writes the paid transaction, the order with its purchase-time
// snapshots, the subscription grant for plan checkouts, the cart clear and
// the popularity bumps atomically.
func (s *CheckoutService) FinalizePaid(ctx context.Context, txn *db_models.Transaction, receipt []byte) (*db_models.Order, error) {
	var meta checkoutMeta
	if err := json.Unmarshal(txn.Metadata, &meta); err != nil {
		return nil, fmt.Errorf("transaction %s metadata: %w", txn.ID, err)
	}

	var order *db_models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		switch meta.Type {
		case "plan":
			order, err = s.finalizePlan(ctx, tx, txn, meta)
		default:
			order, err = s.finalizeCart(ctx, tx, txn, meta)
		}
		if err != nil {
			return err
		}

		meta.OrderID = &order.ID
		metaJSON, _ := json.Marshal(meta)
		fields := map[string]interface{}{
			"status":   db_models.TxnStatusPaid,
			"paid_at":  time.Now().Unix(),
			"order_id": order.ID,
			"metadata": metaJSON,
		}
		if len(receipt) > 0 {
			fields["receipt"] = receipt
		}
		return s.txnRepo.Update(ctx, tx, txn, fields)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *CheckoutService) finalizeCart(ctx context.Context, tx *gorm.DB, txn *db_models.Transaction, meta checkoutMeta) (*db_models.Order, error) {
	if meta.CartID == nil {
		return nil, fmt.Errorf("cart checkout without cart id")
	}
	cart, err := s.cartRepo.GetByID(ctx, *meta.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, utils.ErrCartEmpty
	}

	totals := cartResponse(cart)
	order := &db_models.Order{
		AccountID:      txn.AccountID,
		Total:          totals.Total,
		OriginalTotal:  totals.OriginalTotal,
		Status:         db_models.OrderStatusCompleted,
		ItemCount:      totals.Count,
		GatewayOrderID: txn.ProviderOrderID,
		InvoiceNumber:  newInvoiceNumber(),
	}

	for i := range cart.Items {
		item := &cart.Items[i]
		orderItem := db_models.OrderItem{
			ProductID:     item.ProductID,
			ProductType:   item.ProductType,
			ProductName:   item.ProductName,
			ProductSlug:   item.ProductSlug,
			ImageURL:      item.ImageURL,
			UnitPrice:     item.Price,
			OriginalPrice: item.OriginalPrice,
			Quantity:      item.Quantity,
			LicenseName:   item.LicenseName,
		}

		// Freeze the license terms now: a later edit to the license must not
		// change what this order granted.
		license, err := s.licenseRepo.GetByID(ctx, item.LicenseID)
		if err != nil {
			return nil, err
		}
		if license != nil {
			orderItem.LicenseName = license.Name
			orderItem.LicenseAllowedUses = license.AllowedUses
			orderItem.LicenseDisallowedUses = license.DisallowedUses
		}
		order.Items = append(order.Items, orderItem)
	}

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, err
	}

	for i := range cart.Items {
		item := &cart.Items[i]
		if item.ProductType == "bundle" {
			err = s.bundleRepo.IncrementPopularity(ctx, tx, item.ProductID)
		} else {
			err = s.fontRepo.IncrementPopularity(ctx, tx, item.ProductID)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.cartRepo.Clear(ctx, tx, cart.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *CheckoutService) finalizePlan(ctx context.Context, tx *gorm.DB, txn *db_models.Transaction, meta checkoutMeta) (*db_models.Order, error) {
	plan, err := s.planRepo.GetByCode(ctx, meta.PlanCode)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, utils.ErrRecordNotFound
	}

	now := time.Now()
	ends := now.AddDate(0, 1, 0)
	if plan.Period == db_models.PeriodYear {
		ends = now.AddDate(1, 0, 0)
	}

	sub := &db_models.Subscription{
		AccountID:     txn.AccountID,
		PlanID:        plan.ID,
		Status:        db_models.SubStatusActive,
		StartsAt:      now.Unix(),
		EndsAt:        ends.Unix(),
		AutoRenew:     true,
		Provider:      "paypal",
		ProviderSubID: txn.ProviderOrderID,
	}
	if err := s.subRepo.Create(ctx, tx, sub); err != nil {
		return nil, err
	}

	order := &db_models.Order{
		AccountID:      txn.AccountID,
		Total:          utils.RoundMoney(plan.Price),
		OriginalTotal:  utils.RoundMoney(plan.Price),
		Status:         db_models.OrderStatusSubscriptionGrant,
		ItemCount:      1,
		GatewayOrderID: txn.ProviderOrderID,
		InvoiceNumber:  newInvoiceNumber(),
		Items: []db_models.OrderItem{
			{
				ProductID:   plan.ID,
				ProductType: "plan",
				ProductName: plan.Name,
				ProductSlug: plan.Code,
				UnitPrice:   utils.RoundMoney(plan.Price),
				Quantity:    1,
			},
		},
	}
	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// sendReceipt re-reads the order so the account relation is loaded, then
// mails the buyer. Receipt failures never fail the capture.
func (s *CheckoutService) sendReceipt(orderID uuid.UUID) {
	if s.mail == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil || order == nil {
		log.Printf("receipt mail: load order %s: %v", orderID, err)
		return
	}
	if err := s.mail.SendOrderReceipt(order); err != nil {
		log.Printf("receipt mail: order %s: %v", orderID, err)
	}
}

func newInvoiceNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), suffix)
}
