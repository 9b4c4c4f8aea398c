package config

import (
	"os"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// StoreDir is where the file-backed snapshot store keeps its blobs.
	StoreDir string
	// StoreKey is the persistence slot; one key per session namespace.
	StoreKey string
	// PostgresURL switches persistence to the Postgres adapter when set.
	PostgresURL string
}

func Load() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StoreDir:    getEnv("CART_STORE_DIR", ".carrito"),
		StoreKey:    getEnv("CART_STORE_KEY", "carrito-compras"),
		PostgresURL: getEnv("POSTGRES_URL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
