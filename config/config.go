package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Optional; empty disables event publishing.
	RabbitURL string

	// Optional; empty disables the geocode cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	SessionTTL time.Duration

	GeocodeBaseURL  string
	GeocodeCacheTTL time.Duration
}

func Load() *Config {
	// .env is a development convenience; absence is fine
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getenv("SERVER_PORT", "8080"),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "5432"),
		DBUser:          getenv("DB_USER", "postgres"),
		DBPassword:      getenv("DB_PASSWORD", "postgres"),
		DBName:          getenv("DB_NAME", "openmics"),
		DBSSLMode:       getenv("DB_SSLMODE", "disable"),
		RabbitURL:       os.Getenv("RABBITMQ_URL"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getint("REDIS_DB", 0),
		JWTSecret:       getenv("JWT_SECRET", ""),
		SessionTTL:      getdur("SESSION_TTL", 30*24*time.Hour),
		GeocodeBaseURL:  os.Getenv("GEOCODE_BASE_URL"),
		GeocodeCacheTTL: getdur("GEOCODE_CACHE_TTL", 24*time.Hour),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("missing required env var: JWT_SECRET")
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid value for %s: %q", key, v)
	}
	return n
}

func getdur(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
