package config

import (
	"context"
	"log"
	"os"
	"time"
)

// defaultCatalogAPIURL is the production catalog function endpoint. All
// persistence (torrents, categories, users, stats) lives behind it.
const defaultCatalogAPIURL = "https://functions.poehali.dev/666e4a26-f33a-4f88-b3b1-d9aaa5b427ae"

// CatalogAPIURL returns the base URL of the remote catalog service.
func CatalogAPIURL() string {
	url := os.Getenv("CATALOG_API_URL")
	if url == "" {
		log.Println("⚠️ CATALOG_API_URL not set, using production endpoint")
		return defaultCatalogAPIURL
	}
	return url
}

// WithTimeout returns a context with a 10s timeout for remote catalog calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
