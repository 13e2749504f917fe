package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/paypal"
	"stylishtype/internal/repositories"
)

const (
	// a capture that has not landed after this long is worth asking the
	// gateway about
	stalePendingAfter = 30 * time.Minute

	// pending transactions this old are written off as failed when the
	// gateway no longer reports the order completed
	abandonPendingAfter = 72 * time.Hour

	reconcileBatchSize = 50
)

// ReconcileService closes the gap left by captures that succeeded at the
// gateway but never made it back to us (client crash, dropped response). It
// periodically re-reads stuck pending transactions from the gateway and
// finalizes or fails them.
type ReconcileService struct {
	txnRepo  repositories.TransactionRepository
	checkout CheckoutServiceInterface
	gateway  *paypal.Client
	cron     *cron.Cron
}

func NewReconcileService(
	txnRepo repositories.TransactionRepository,
	checkout CheckoutServiceInterface,
	gateway *paypal.Client,
) *ReconcileService {
	return &ReconcileService{
		txnRepo:  txnRepo,
		checkout: checkout,
		gateway:  gateway,
		cron:     cron.New(),
	}
}

func (s *ReconcileService) Start() error {
	_, err := s.cron.AddFunc("@every 15m", func() {
		if err := s.Sweep(context.Background()); err != nil {
			log.Printf("reconcile sweep: %v", err)
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *ReconcileService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReconcileService) Sweep(ctx context.Context) error {
	txns, err := s.txnRepo.ListStalePending(ctx, stalePendingAfter, reconcileBatchSize)
	if err != nil {
		return err
	}

	for i := range txns {
		txn := &txns[i]
		if err := s.reconcileOne(ctx, txn); err != nil {
			log.Printf("reconcile transaction %s (%s): %v", txn.ID, txn.ProviderOrderID, err)
		}
	}
	return nil
}

func (s *ReconcileService) reconcileOne(ctx context.Context, txn *db_models.Transaction) error {
	gwOrder, err := s.gateway.GetOrder(ctx, txn.ProviderOrderID)
	if err != nil {
		// The gateway may be briefly unavailable; too-old orders are failed
		// regardless so they stop accumulating.
		if time.Unix(txn.CreatedAt, 0).Before(time.Now().Add(-abandonPendingAfter)) {
			return s.markFailed(ctx, txn)
		}
		return err
	}

	switch gwOrder.Status {
	case "COMPLETED":
		_, err := s.checkout.FinalizePaid(ctx, txn, gwOrder.Raw)
		if err != nil {
			return err
		}
		log.Printf("reconcile: recovered paid transaction %s", txn.ID)
		return nil
	case "VOIDED":
		return s.markFailed(ctx, txn)
	default:
		// CREATED / APPROVED orders may still complete; only give up once
		// the abandonment window has passed.
		if time.Unix(txn.CreatedAt, 0).Before(time.Now().Add(-abandonPendingAfter)) {
			return s.markFailed(ctx, txn)
		}
		return nil
	}
}

func (s *ReconcileService) markFailed(ctx context.Context, txn *db_models.Transaction) error {
	return s.txnRepo.Update(ctx, nil, txn, map[string]interface{}{
		"status": db_models.TxnStatusFailed,
	})
}
