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
	// Server
	Port string
	Env  string

	// Database
	DBDriver    string
	DatabaseURL string

	// Redis (optional, enables submission rate limiting)
	RedisURL           string
	RateLimitPerMinute int

	// CORS / CSRF
	AllowedOrigins []string
	CSRFKey        string
	SecureCookies  bool

	// Booking
	CatalogueFile string
	Timezone      string
	SiteName      string
	NotifyTimeout time.Duration

	// Email
	ResendAPIKey  string
	EmailFrom     string
	OperatorEmail string

	// Events (optional)
	AMQPURL string

	// Admin
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL: getEnv("DATABASE_URL", "file:sinding_booking.db?_pragma=busy_timeout(5000)&_time_format=sqlite"),

		// Redis
		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerMinute: parseInt(getEnv("RATE_LIMIT_PER_MINUTE", "10"), 10),

		// CORS / CSRF
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:8080")),
		CSRFKey:        getEnv("CSRF_KEY", "change-me-32-byte-csrf-key-000000"),
		SecureCookies:  parseBool(getEnv("SECURE_COOKIES", "false"), false),

		// Booking
		CatalogueFile: getEnv("CATALOGUE_FILE", ""),
		Timezone:      getEnv("TIMEZONE", "Europe/Oslo"),
		SiteName:      getEnv("SITE_NAME", "Sinding Photography"),
		NotifyTimeout: parseDuration(getEnv("NOTIFY_TIMEOUT", "30s"), 30*time.Second),

		// Email
		ResendAPIKey:  getEnv("RESEND_API_KEY", ""),
		EmailFrom:     getEnv("EMAIL_FROM", "Sinding Photography <booking@sindingphotography.no>"),
		OperatorEmail: getEnv("OPERATOR_EMAIL", "post@sindingphotography.no"),

		// Events
		AMQPURL: getEnv("AMQP_URL", ""),

		// Admin
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@sindingphotography.no"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminTokenTTL:     parseDuration(getEnv("ADMIN_TOKEN_TTL", "12h"), 12*time.Hour),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseBool(s string, defaultValue bool) bool {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Location resolves Timezone, falling back to UTC when the zone database has no entry.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
