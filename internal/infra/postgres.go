package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"stylishtype/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Partner{},
		&db_models.Brand{},
		&db_models.Discount{},
		&db_models.License{},
		&db_models.Font{},
		&db_models.Bundle{},
		&db_models.Post{},
		&db_models.Cart{},
		&db_models.CartItem{},
		&db_models.Order{},
		&db_models.OrderItem{},
		&db_models.Transaction{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.SiteConfig{},
		&db_models.Banner{},
		&db_models.GalleryImage{},
		&db_models.HomepageSection{},
		&db_models.HomepageProduct{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
