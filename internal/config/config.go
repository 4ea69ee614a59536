package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string

	// Cloud mirror (jsonbin-style document store). Sync is disabled when
	// CloudSyncURL is empty.
	CloudSyncURL         string
	CloudSyncAPIKey      string
	CloudPollSeconds     int // remote pull interval
	CloudSuppressSeconds int // pulls are skipped this long after a local write
}

func Load() *Config {
	// Local development reads a .env file; missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:          getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=bakery port=5432 sslmode=disable"),
		CORSOrigins:          getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		CloudSyncURL:         getEnv("CLOUD_SYNC_URL", ""),
		CloudSyncAPIKey:      getEnv("CLOUD_SYNC_API_KEY", ""),
		CloudPollSeconds:     getEnvInt("CLOUD_POLL_SECONDS", 30),
		CloudSuppressSeconds: getEnvInt("CLOUD_SUPPRESS_SECONDS", 5),
	}

	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=bakery port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is using the development default; set it for production.")
	}
	if cfg.CloudSyncURL == "" {
		log.Println("[INFO] CLOUD_SYNC_URL not set, cloud mirroring disabled.")
	} else if cfg.CloudSyncAPIKey == "" {
		log.Println("[WARN] CLOUD_SYNC_URL is set but CLOUD_SYNC_API_KEY is empty.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}
