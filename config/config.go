package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	LinkWaitTimeout time.Duration
	ProbeTimeout    time.Duration
	PacingEvery     int
	PacingDelay     time.Duration
	Headless        bool
	AcceptLanguage  string
	UserAgent       string
	CSVPath         string
	DBEnabled       bool
	DBHost          string
	DBPort          int
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:         "https://www.dubizzle.com.eg/vehicles/cars-for-sale/",
		RequestTimeout:  60 * time.Second,
		LinkWaitTimeout: 25 * time.Second,
		ProbeTimeout:    2 * time.Second,
		PacingEvery:     5,
		PacingDelay:     700 * time.Millisecond,
		Headless:        true,
		AcceptLanguage:  "ar-EG,ar;q=0.9,en;q=0.8",
		UserAgent:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		CSVPath:         "output/dubizzle_cars.csv",
		DBEnabled:       false,
		DBHost:          "localhost",
		DBPort:          5432,
		DBUser:          "postgres",
		DBPassword:      "postgres",
		DBName:          "dubizzle_scraper",
		DBSSLMode:       "disable",
	}
}

// Load builds the runtime config: defaults, then overrides from the
// environment (a .env file is honoured when present). Setting DB_HOST
// turns the optional PostgreSQL sink on.
func Load() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.CSVPath = v
	}
	if v := os.Getenv("HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Headless = b
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.DBEnabled = true
		cfg.DBHost = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.DBPort = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.DBUser = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.DBPassword = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.DBName = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		cfg.DBSSLMode = v
	}

	return cfg
}
