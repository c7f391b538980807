package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "gite.db"
	defaultTokenTTL       = "24h"
	defaultAuthCookieName = "adminToken"
	defaultNightlyRate    = "96"
	defaultCleaningFee    = "40"
	defaultAdminLoginPath = "/admin/login"
)

// Config carries everything the process reads from the environment.
// JWT_SECRET is the only hard requirement.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	AuthCookieName string
	AdminLoginPath string

	// Owner notification settings for the booking-request and contact
	// flows.
	OwnerEmail     string
	NightlyRateEUR float64
	CleaningFeeEUR float64
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AuthCookieName: getEnv("AUTH_COOKIE_NAME", defaultAuthCookieName),
		AdminLoginPath: getEnv("ADMIN_LOGIN_PATH", defaultAdminLoginPath),
		OwnerEmail:     getEnv("OWNER_EMAIL", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	var err error
	cfg.TokenTTL, err = parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}
	cfg.NightlyRateEUR, err = parseFloatEnv("NIGHTLY_RATE_EUR", defaultNightlyRate)
	if err != nil {
		return nil, err
	}
	cfg.CleaningFeeEUR, err = parseFloatEnv("CLEANING_FEE_EUR", defaultCleaningFee)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func parseFloatEnv(key, fallback string) (float64, error) {
	raw := getEnv(key, fallback)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return f, nil
}
