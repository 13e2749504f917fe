package cart_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"stylishtype/internal/api/controllers"
	"stylishtype/internal/repositories"
	"stylishtype/internal/services"
)

var Module = fx.Provide(
	provideCartRepo, provideCartService, provideCartController)

func provideCartRepo(db *gorm.DB) repositories.CartRepository {
	return repositories.NewCartRepository(db)
}

func provideCartService(
	cartRepo repositories.CartRepository,
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	licenseRepo repositories.LicenseRepository,
) services.CartServiceInterface {
	return services.NewCartService(cartRepo, fontRepo, bundleRepo, licenseRepo)
}

func provideCartController(cartService services.CartServiceInterface) *controllers.CartController {
	return controllers.NewCartController(cartService)
}
