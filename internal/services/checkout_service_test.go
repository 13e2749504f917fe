package services

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/pkg/utils"
)

type stubTxnRepo struct {
	txns []db_models.Transaction
}

func (s *stubTxnRepo) Create(_ context.Context, txn *db_models.Transaction) error {
	txn.ID = uuid.New()
	s.txns = append(s.txns, *txn)
	return nil
}

func (s *stubTxnRepo) GetByProviderOrderID(_ context.Context, providerOrderID string) (*db_models.Transaction, error) {
	for i := range s.txns {
		if s.txns[i].ProviderOrderID == providerOrderID {
			return &s.txns[i], nil
		}
	}
	return nil, nil
}

func (s *stubTxnRepo) Update(_ context.Context, _ *gorm.DB, txn *db_models.Transaction, fields map[string]interface{}) error {
	for i := range s.txns {
		if s.txns[i].ID != txn.ID {
			continue
		}
		if status, ok := fields["status"].(db_models.TransactionStatus); ok {
			s.txns[i].Status = status
		}
		if orderID, ok := fields["order_id"].(uuid.UUID); ok {
			s.txns[i].OrderID = &orderID
		}
	}
	return nil
}

func (s *stubTxnRepo) ListStalePending(context.Context, time.Duration, int) ([]db_models.Transaction, error) {
	return nil, nil
}

func TestInvoiceNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-\d{8}-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		number := newInvoiceNumber()
		assert.Regexp(t, pattern, number)
		assert.False(t, seen[number], "invoice numbers must not repeat")
		seen[number] = true
	}
}

func TestFinalizeCartFreezesLicenseTerms(t *testing.T) {
	accountID := uuid.New()
	fontID := uuid.New()
	original := 25.0

	license := db_models.License{
		Name:           "Desktop",
		AllowedUses:    pq.StringArray{"Logos", "Print"},
		DisallowedUses: pq.StringArray{"Resale"},
	}
	license.ID = uuid.New()

	cartRepo := newStubCartRepo()
	cart := &db_models.Cart{AccountID: &accountID}
	require.NoError(t, cartRepo.Create(context.Background(), cart))
	require.NoError(t, cartRepo.AddItem(context.Background(), &db_models.CartItem{
		CartID:        cart.ID,
		Key:           fontID.String() + "-" + license.ID.String(),
		ProductID:     fontID,
		ProductType:   "font",
		ProductName:   "Grotesk One",
		ProductSlug:   "grotesk-one",
		Price:         20,
		OriginalPrice: &original,
		Quantity:      1,
		LicenseID:     license.ID,
		LicenseName:   license.Name,
	}))

	orderRepo := &stubOrderRepo{}
	fontRepo := &stubFontRepo{}
	svc := NewCheckoutService(nil, nil, cartRepo, &stubTxnRepo{}, orderRepo,
		&stubPlanRepo{}, &stubSubscriptionRepo{}, fontRepo, &stubBundleRepo{},
		&stubLicenseRepo{licenses: []db_models.License{license}}, nil).(*CheckoutService)

	txn := &db_models.Transaction{AccountID: accountID, ProviderOrderID: "PAY-1", Status: db_models.TxnStatusPending}
	txn.ID = uuid.New()

	order, err := svc.finalizeCart(context.Background(), nil, txn, checkoutMeta{Type: "cart", CartID: &cart.ID})
	require.NoError(t, err)

	assert.Equal(t, db_models.OrderStatusCompleted, order.Status)
	assert.Equal(t, 20.0, order.Total)
	assert.Equal(t, 25.0, order.OriginalTotal)
	assert.Regexp(t, `^INV-`, order.InvoiceNumber)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, 20.0, item.UnitPrice)
	assert.Equal(t, "Desktop", item.LicenseName)
	assert.Equal(t, pq.StringArray{"Logos", "Print"}, item.LicenseAllowedUses)
	assert.Equal(t, pq.StringArray{"Resale"}, item.LicenseDisallowedUses)

	// the cart is emptied and the bought product's popularity bumped
	assert.Empty(t, cart.Items)
	assert.Equal(t, 1, fontRepo.popularity[fontID])
	assert.Len(t, orderRepo.orders, 1)
}

func TestCaptureOrderAlreadyPaidIsIdempotent(t *testing.T) {
	accountID := uuid.New()

	order := db_models.Order{
		AccountID:     accountID,
		InvoiceNumber: "INV-20260901-AAAA1111",
		Status:        db_models.OrderStatusCompleted,
	}
	order.ID = uuid.New()

	meta, _ := json.Marshal(checkoutMeta{Type: "cart", OrderID: &order.ID})
	paid := db_models.Transaction{
		AccountID:       accountID,
		ProviderOrderID: "PAY-7",
		Status:          db_models.TxnStatusPaid,
		Metadata:        meta,
	}
	paid.ID = uuid.New()

	// a nil gateway client would panic if the second capture reached it
	svc := NewCheckoutService(nil, nil, newStubCartRepo(),
		&stubTxnRepo{txns: []db_models.Transaction{paid}},
		&stubOrderRepo{orders: []db_models.Order{order}},
		&stubPlanRepo{}, &stubSubscriptionRepo{}, &stubFontRepo{}, &stubBundleRepo{},
		&stubLicenseRepo{}, nil)

	res, err := svc.CaptureOrder(context.Background(), accountID,
		request_models.CaptureCheckoutRequest{GatewayOrderID: "PAY-7"})
	require.NoError(t, err)
	assert.Equal(t, order.ID, res.OrderID)
	assert.Equal(t, "INV-20260901-AAAA1111", res.InvoiceNumber)

	_, err = svc.CaptureOrder(context.Background(), uuid.New(),
		request_models.CaptureCheckoutRequest{GatewayOrderID: "PAY-7"})
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestCaptureOrderRejectsNonPendingTransaction(t *testing.T) {
	accountID := uuid.New()

	failed := db_models.Transaction{
		AccountID:       accountID,
		ProviderOrderID: "PAY-9",
		Status:          db_models.TxnStatusFailed,
	}
	failed.ID = uuid.New()

	svc := NewCheckoutService(nil, nil, newStubCartRepo(),
		&stubTxnRepo{txns: []db_models.Transaction{failed}},
		&stubOrderRepo{}, &stubPlanRepo{}, &stubSubscriptionRepo{},
		&stubFontRepo{}, &stubBundleRepo{}, &stubLicenseRepo{}, nil)

	_, err := svc.CaptureOrder(context.Background(), accountID,
		request_models.CaptureCheckoutRequest{GatewayOrderID: "PAY-9"})
	assert.ErrorIs(t, err, utils.ErrOrderNotPayable)
}
