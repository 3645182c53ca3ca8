package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"RealtyAPI/store"
	"RealtyAPI/utils"
)

const AppName = "realty-api"

type Config struct {
	Port               string
	DatabaseURL        string
	DatabaseName       string
	PropertyCollection store.Collection
	InquiryCollection  store.Collection
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CacheTTL           time.Duration
	StoreTimeout       time.Duration
	LogLevel           string
}

// Load reads a .env file when present, then the process environment.
// Malformed numeric or duration values fall back to their defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, using system environment variables")
	}

	return &Config{
		Port:               getEnv("PORT", "8000"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseName:       getEnv("DATABASE_NAME", "realty"),
		PropertyCollection: store.Collection(getEnv("MONGODB_COLLECTION_PROPERTIES", "property")),
		InquiryCollection:  store.Collection(getEnv("MONGODB_COLLECTION_INQUIRIES", "inquiry")),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getInt("REDIS_DB", 0),
		CacheTTL:           getDuration("CACHE_TTL", 30*time.Second),
		StoreTimeout:       getDuration("STORE_TIMEOUT", store.DefaultTimeout),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.Logger.Warnf("Invalid %s '%s', using %d", key, raw, def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		utils.Logger.Warnf("Invalid %s '%s', using %s", key, raw, def)
		return def
	}
	return d
}
