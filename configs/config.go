package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	Port        string
	Environment string
	APIKey      string

	AdminUsername string
	AdminPassword string

	// データソース設定
	DataSource    string // xlsx, csv, sqlite, postgres, mysql
	DataFile      string
	DataSheet     string
	DatabaseDSN   string
	DatabaseTable string
	ColumnMapFile string

	CurrencySymbol string
	DatasetCache   bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		APIKey:         getEnv("API_KEY", ""),
		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		DataSource:     strings.ToLower(getEnv("DATA_SOURCE", "xlsx")),
		DataFile:       getEnv("DATA_FILE", "Sample_data.xlsx"),
		DataSheet:      getEnv("DATA_SHEET", ""),
		DatabaseDSN:    getEnv("DATABASE_DSN", ""),
		DatabaseTable:  getEnv("DATABASE_TABLE", "real_estate"),
		ColumnMapFile:  getEnv("COLUMN_MAP_FILE", ""),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
		DatasetCache:   getEnvBool("DATASET_CACHE", true),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
