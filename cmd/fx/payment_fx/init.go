package payment_fx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"stylishtype/internal/api/controllers"
	"stylishtype/internal/paypal"
	"stylishtype/internal/repositories"
	"stylishtype/internal/services"
	mem "stylishtype/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(
		provideGatewayClient,
		provideOrderRepo, provideTransactionRepo, providePlanRepo, provideSubscriptionRepo,
		provideCheckoutService, provideOrderService, provideDocumentService,
		provideSubscriptionService, provideDownloadService, provideReconcileService,
		provideCheckoutController, provideOrderController, provideSubscriptionController,
		provideDownloadController,
	),
	fx.Invoke(startReconciler),
)

func provideGatewayClient(tokens mem.TokenStore) *paypal.Client {
	return paypal.NewClient(paypal.Config{
		ClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		ClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		BaseURL:      os.Getenv("PAYPAL_BASE_URL"),
	}, tokens)
}

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideCheckoutService(
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
	mailService services.MailServiceInterface,
) services.CheckoutServiceInterface {
	return services.NewCheckoutService(db, gateway, cartRepo, txnRepo, orderRepo,
		planRepo, subRepo, fontRepo, bundleRepo, licenseRepo, mailService)
}

func provideOrderService(orderRepo repositories.OrderRepository) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo)
}

func provideDocumentService(orderService services.OrderServiceInterface) services.DocumentServiceInterface {
	return services.NewDocumentService(orderService)
}

func provideSubscriptionService(
	planRepo repositories.PlanRepository,
	subRepo repositories.SubscriptionRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(planRepo, subRepo)
}

func provideDownloadService(
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	orderRepo repositories.OrderRepository,
	subRepo repositories.SubscriptionRepository,
) services.DownloadServiceInterface {
	return services.NewDownloadService(fontRepo, bundleRepo, orderRepo, subRepo)
}

func provideReconcileService(
	txnRepo repositories.TransactionRepository,
	checkout services.CheckoutServiceInterface,
	gateway *paypal.Client,
) *services.ReconcileService {
	return services.NewReconcileService(txnRepo, checkout, gateway)
}

func startReconciler(lc fx.Lifecycle, reconciler *services.ReconcileService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return reconciler.Start()
		},
		OnStop: func(ctx context.Context) error {
			reconciler.Stop()
			return nil
		},
	})
}

func provideCheckoutController(checkoutService services.CheckoutServiceInterface) *controllers.CheckoutController {
	return controllers.NewCheckoutController(checkoutService)
}

func provideOrderController(
	orderService services.OrderServiceInterface,
	documentService services.DocumentServiceInterface,
) *controllers.OrderController {
	return controllers.NewOrderController(orderService, documentService)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}

func provideDownloadController(downloadService services.DownloadServiceInterface) *controllers.DownloadController {
	return controllers.NewDownloadController(downloadService)
}
