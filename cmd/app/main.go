package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"stylishtype/cmd/fx/account_fx"
	"stylishtype/cmd/fx/blog_fx"
	"stylishtype/cmd/fx/cart_fx"
	"stylishtype/cmd/fx/catalog_fx"
	"stylishtype/cmd/fx/db_fx"
	"stylishtype/cmd/fx/mail_fx"
	"stylishtype/cmd/fx/memcache_fx"
	"stylishtype/cmd/fx/payment_fx"
	"stylishtype/cmd/fx/site_fx"
	"stylishtype/internal/api/controllers"
	"stylishtype/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		blog_fx.Module,
		cart_fx.Module,
		payment_fx.Module,
		mail_fx.Module,
		site_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	postController *controllers.PostController,
	cartController *controllers.CartController,
	checkoutController *controllers.CheckoutController,
	orderController *controllers.OrderController,
	subscriptionController *controllers.SubscriptionController,
	contactController *controllers.ContactController,
	feedController *controllers.FeedController,
	downloadController *controllers.DownloadController,
	adminCatalogController *controllers.AdminCatalogController,
	adminSiteController *controllers.AdminSiteController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("FRONTEND_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", controllers.CartTokenHeader},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r,
		accountController, catalogController, postController, cartController,
		checkoutController, orderController, subscriptionController,
		contactController, feedController, downloadController,
		adminCatalogController, adminSiteController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	postController *controllers.PostController,
	cartController *controllers.CartController,
	checkoutController *controllers.CheckoutController,
	orderController *controllers.OrderController,
	subscriptionController *controllers.SubscriptionController,
	contactController *controllers.ContactController,
	feedController *controllers.FeedController,
	downloadController *controllers.DownloadController,
	adminCatalogController *controllers.AdminCatalogController,
	adminSiteController *controllers.AdminSiteController,
) {
	// crawler-facing surfaces live at the root, outside the API envelope
	r.GET("/sitemap.xml", feedController.Sitemap)
	r.GET("/robots.txt", feedController.Robots)

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	api.GET("/home", catalogController.Home)
	api.GET("/fonts", catalogController.ListFonts)
	api.GET("/bundles", catalogController.ListBundles)
	api.GET("/font-detail/:slug", catalogController.FontDetail)
	api.GET("/bundle-detail/:slug", catalogController.BundleDetail)
	api.GET("/partners", catalogController.ListPartners)
	api.GET("/partner-detail/:slug", catalogController.PartnerDetail)
	api.GET("/licenses", catalogController.ListLicenses)
	api.GET("/site-config", catalogController.SiteConfig)
	api.GET("/gallery", catalogController.Gallery)
	api.GET("/catalog/facebook", feedController.MerchantFeed)

	api.GET("/blog", postController.List)
	api.GET("/blog/:slug", postController.Detail)

	cart := api.Group("/cart", middleware.OptionalJWTMiddleware())
	cart.GET("", cartController.Get)
	cart.POST("/items", cartController.AddItem)
	cart.DELETE("/items/:key", cartController.RemoveItem)
	cart.DELETE("", cartController.Clear)

	checkout := api.Group("/checkout", middleware.JWTAuthMiddleware())
	checkout.POST("", checkoutController.CreateOrder)
	checkout.POST("/capture", checkoutController.CaptureOrder)

	orders := api.Group("/orders", middleware.JWTAuthMiddleware())
	orders.GET("", orderController.List)
	orders.GET("/:id", orderController.Detail)
	orders.GET("/:id/invoice.pdf", orderController.Invoice)
	orders.GET("/:id/eula.pdf", orderController.Eula)

	api.GET("/plans", subscriptionController.ListPlans)
	api.GET("/subscription", middleware.JWTAuthMiddleware(), subscriptionController.Status)

	downloads := api.Group("/downloads", middleware.JWTAuthMiddleware())
	downloads.GET("/fonts/:id", downloadController.FontFiles)
	downloads.GET("/bundles/:id", downloadController.BundleFiles)

	api.POST("/contact", contactController.Submit)

	admin := api.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))

	admin.POST("/fonts", adminCatalogController.CreateFont)
	admin.PUT("/fonts/:id", adminCatalogController.UpdateFont)
	admin.DELETE("/fonts/:id", adminCatalogController.DeleteFont)
	admin.POST("/bundles", adminCatalogController.CreateBundle)
	admin.PUT("/bundles/:id", adminCatalogController.UpdateBundle)
	admin.DELETE("/bundles/:id", adminCatalogController.DeleteBundle)

	admin.POST("/partners", adminCatalogController.CreatePartner)
	admin.PUT("/partners/:id", adminCatalogController.UpdatePartner)
	admin.DELETE("/partners/:id", adminCatalogController.DeletePartner)

	admin.GET("/brands", adminCatalogController.ListBrands)
	admin.POST("/brands", adminCatalogController.CreateBrand)
	admin.PUT("/brands/:id", adminCatalogController.UpdateBrand)
	admin.DELETE("/brands/:id", adminCatalogController.DeleteBrand)

	admin.POST("/licenses", adminCatalogController.CreateLicense)
	admin.PUT("/licenses/:id", adminCatalogController.UpdateLicense)
	admin.DELETE("/licenses/:id", adminCatalogController.DeleteLicense)

	admin.GET("/discounts", adminCatalogController.ListDiscounts)
	admin.POST("/discounts", adminCatalogController.CreateDiscount)
	admin.PUT("/discounts/:id", adminCatalogController.UpdateDiscount)
	admin.DELETE("/discounts/:id", adminCatalogController.DeleteDiscount)

	admin.POST("/posts", adminSiteController.CreatePost)
	admin.PUT("/posts/:id", adminSiteController.UpdatePost)
	admin.DELETE("/posts/:id", adminSiteController.DeletePost)

	admin.GET("/banners", adminSiteController.ListBanners)
	admin.POST("/banners", adminSiteController.CreateBanner)
	admin.PUT("/banners/:id", adminSiteController.UpdateBanner)
	admin.DELETE("/banners/:id", adminSiteController.DeleteBanner)

	admin.POST("/gallery", adminSiteController.CreateGalleryImage)
	admin.PUT("/gallery/:id", adminSiteController.UpdateGalleryImage)
	admin.DELETE("/gallery/:id", adminSiteController.DeleteGalleryImage)

	admin.GET("/site-config", adminSiteController.GetConfig)
	admin.PUT("/site-config", adminSiteController.UpsertConfig)
	admin.PUT("/homepage-sections/:slot", adminSiteController.SetHomepageSection)
}
