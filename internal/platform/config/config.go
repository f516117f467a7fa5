package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string

	MongoURI            string
	MongoDB             string
	MongoConnectTimeout time.Duration

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string
	BcryptCost         int

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	OrderQueueName string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
	AdminFullName string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		APIPort:             getEnv("API_PORT", "5000"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "PharmacyDB"),
		MongoConnectTimeout: time.Duration(getEnvAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		CORSAllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		BcryptCost:          getEnvAsInt("BCRYPT_COST", 10),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		OrderQueueName:      getEnv("ORDER_QUEUE_NAME", "order_events_queue"),
		AdminUsername:       getEnv("ADMIN_USERNAME", ""),
		AdminEmail:          getEnv("ADMIN_EMAIL", ""),
		AdminPassword:       getEnv("ADMIN_PASSWORD", ""),
		AdminFullName:       getEnv("ADMIN_FULL_NAME", "Administrator"),
	}
}

// QueueEnabled reports whether an order queue backend is configured.
func (c *Config) QueueEnabled() bool {
	return c.RedisAddr != ""
}

// AdminSeedEnabled reports whether an admin account should be seeded at startup.
func (c *Config) AdminSeedEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
