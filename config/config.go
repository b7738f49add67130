package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	JWTSecret string
	Port      string

	// Cookie settings: domain пустой в dev, secure только в production
	Env          string
	CookieDomain string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	ContactEmail string

	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string

	GuestTTLHours int
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		RedisAddr:      getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("TOKEN_SECRET"),
		Port:           getenvOrDefault("PORT", "4000"),
		Env:            getenvOrDefault("APP_ENV", "development"),
		CookieDomain:   os.Getenv("COOKIE_DOMAIN"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getenvOrDefault("SMTP_PORT", "587"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		ContactEmail:   os.Getenv("CONTACT_EMAIL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:   os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect: os.Getenv("GOOGLE_REDIRECT_URI"),
		GuestTTLHours:  getenvIntOrDefault("GUEST_TTL_HOURS", 12),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
