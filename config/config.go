package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string
	APP_URL    string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	// Static (tier, billing period) -> Stripe price id table.
	STRIPE_PRICE_BASIC_MONTHLY string
	STRIPE_PRICE_BASIC_ANNUAL  string
	STRIPE_PRICE_PRO_MONTHLY   string
	STRIPE_PRICE_PRO_ANNUAL    string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_WEBHOOK_SECRET = mustEnv("STRIPE_WEBHOOK_SECRET")

	STRIPE_PRICE_BASIC_MONTHLY = getEnv("STRIPE_PRICE_BASIC_MONTHLY", "")
	STRIPE_PRICE_BASIC_ANNUAL = getEnv("STRIPE_PRICE_BASIC_ANNUAL", "")
	STRIPE_PRICE_PRO_MONTHLY = getEnv("STRIPE_PRICE_PRO_MONTHLY", "")
	STRIPE_PRICE_PRO_ANNUAL = getEnv("STRIPE_PRICE_PRO_ANNUAL", "")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
