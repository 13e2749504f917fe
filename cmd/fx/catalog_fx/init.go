package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"stylishtype/internal/api/controllers"
	"stylishtype/internal/repositories"
	"stylishtype/internal/services"
)

var Module = fx.Provide(
	provideFontRepo, provideBundleRepo, providePartnerRepo, provideBrandRepo,
	provideLicenseRepo, provideDiscountRepo,
	provideCatalogService, providePartnerService, provideBrandService,
	provideLicenseService, provideDiscountService, provideProductAdminService,
	provideCatalogController, provideAdminCatalogController,
)

func provideFontRepo(db *gorm.DB) repositories.FontRepository {
	return repositories.NewFontRepository(db)
}

func provideBundleRepo(db *gorm.DB) repositories.BundleRepository {
	return repositories.NewBundleRepository(db)
}

func providePartnerRepo(db *gorm.DB) repositories.PartnerRepository {
	return repositories.NewPartnerRepository(db)
}

func provideBrandRepo(db *gorm.DB) repositories.BrandRepository {
	return repositories.NewBrandRepository(db)
}

func provideLicenseRepo(db *gorm.DB) repositories.LicenseRepository {
	return repositories.NewLicenseRepository(db)
}

func provideDiscountRepo(db *gorm.DB) repositories.DiscountRepository {
	return repositories.NewDiscountRepository(db)
}

func provideCatalogService(
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	postRepo repositories.PostRepository,
	siteRepo repositories.SiteRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(fontRepo, bundleRepo, postRepo, siteRepo)
}

func providePartnerService(partnerRepo repositories.PartnerRepository) services.PartnerServiceInterface {
	return services.NewPartnerService(partnerRepo)
}

func provideBrandService(brandRepo repositories.BrandRepository) services.BrandServiceInterface {
	return services.NewBrandService(brandRepo)
}

func provideLicenseService(licenseRepo repositories.LicenseRepository) services.LicenseServiceInterface {
	return services.NewLicenseService(licenseRepo)
}

func provideDiscountService(discountRepo repositories.DiscountRepository) services.DiscountServiceInterface {
	return services.NewDiscountService(discountRepo)
}

func provideProductAdminService(
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
) services.ProductAdminServiceInterface {
	return services.NewProductAdminService(fontRepo, bundleRepo)
}

func provideCatalogController(
	catalogService services.CatalogServiceInterface,
	partnerService services.PartnerServiceInterface,
	licenseService services.LicenseServiceInterface,
	siteService services.SiteServiceInterface,
) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService, partnerService, licenseService, siteService)
}

func provideAdminCatalogController(
	productService services.ProductAdminServiceInterface,
	partnerService services.PartnerServiceInterface,
	brandService services.BrandServiceInterface,
	licenseService services.LicenseServiceInterface,
	discountService services.DiscountServiceInterface,
) *controllers.AdminCatalogController {
	return controllers.NewAdminCatalogController(productService, partnerService, brandService, licenseService, discountService)
}
