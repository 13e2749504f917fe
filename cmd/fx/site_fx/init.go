package site_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"stylishtype/internal/api/controllers"
	"stylishtype/internal/repositories"
	"stylishtype/internal/services"
)

var Module = fx.Provide(
	provideSiteRepo, provideSiteService, provideFeedService,
	provideAdminSiteController, provideFeedController,
)

func provideSiteRepo(db *gorm.DB) repositories.SiteRepository {
	return repositories.NewSiteRepository(db)
}

func provideSiteService(siteRepo repositories.SiteRepository) services.SiteServiceInterface {
	return services.NewSiteService(siteRepo)
}

func provideFeedService(
	fontRepo repositories.FontRepository,
	bundleRepo repositories.BundleRepository,
	postRepo repositories.PostRepository,
	partnerRepo repositories.PartnerRepository,
) services.FeedServiceInterface {
	return services.NewFeedService(
		os.Getenv("SITE_BASE_URL"),
		os.Getenv("SITE_BRAND_NAME"),
		fontRepo, bundleRepo, postRepo, partnerRepo)
}

func provideAdminSiteController(
	postService services.PostServiceInterface,
	siteService services.SiteServiceInterface,
) *controllers.AdminSiteController {
	return controllers.NewAdminSiteController(postService, siteService)
}

func provideFeedController(feedService services.FeedServiceInterface) *controllers.FeedController {
	return controllers.NewFeedController(feedService)
}
