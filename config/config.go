package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	MongoURI          string
	MongoDB           string
	JWTSecret         string
	JWTExpiresMinutes int
}

// Load reads .env (when present) and environment variables, falling back to
// local development defaults.
func Load() Config {
	_ = godotenv.Load()

	expires := 120
	if v := os.Getenv("JWT_EXPIRES_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expires = n
		}
	}

	return Config{
		Port:              getenv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MongoURI:          getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getenv("MONGO_DB", "developerstore"),
		JWTSecret:         getenv("JWT_SECRET", "devstore_dev_secret_key_please_change"),
		JWTExpiresMinutes: expires,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
