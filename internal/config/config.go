package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBDSN         string
	DBDebug       bool
	SQLMigrations bool
	ServerPort    string
	SessionSecret string

	// Location is the timezone calendar views and "today" use unless a
	// request asks for another one.
	Location *time.Location

	RequireEmailConfirmation bool
	PlacesAPIKey             string
}

// Load reads the environment (and .env when present) and exits on error.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBDriver:      strings.ToLower(os.Getenv("DB_DRIVER")),
		DBDSN:         os.Getenv("DB_DSN"),
		DBDebug:       envBool("DB_DEBUG"),
		SQLMigrations: envBool("MIGRATIONS"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		PlacesAPIKey:  os.Getenv("PLACES_API_KEY"),

		RequireEmailConfirmation: envBool("REQUIRE_EMAIL_CONFIRMATION"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER %q is not supported", cfg.DBDriver)
	}
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}

	tz := os.Getenv("DEFAULT_TIMEZONE")
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}

func envBool(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false
	}
	if strings.EqualFold(v, "yes") {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
