package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	SeedDemo  bool
}

// JWTSecret signs and verifies bearer tokens. Populated by Load; tests may
// override it directly.
var JWTSecret = []byte("food_delivery_dev_secret")

// Load reads configuration from a .env file (if present) and the process
// environment, with development fallbacks.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "food_delivery.db"),
		JWTSecret: getEnv("JWT_SECRET", "food_delivery_dev_secret"),
		SeedDemo:  getEnv("SEED_DEMO_DATA", "true") == "true",
	}
	JWTSecret = []byte(cfg.JWTSecret)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
