package database

import (
	"fmt"
	"log"
	"os"

	"directory-app/internal/domain/inquiries"
	"directory-app/internal/domain/listings"
	"directory-app/internal/domain/operators"
	"directory-app/internal/domain/subscriptions"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// accounts
		&operators.Operator{},
		&operators.VerificationToken{},

		// billing
		&subscriptions.Subscription{},

		// directory
		&listings.Listing{},
		&listings.ListingImage{},
		&inquiries.Inquiry{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
