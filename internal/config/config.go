package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Reference data store: "sheets" talks to the Google Sheets API,
	// "local" reads/writes a workbook file on disk (development, tests).
	StoreMode string `mapstructure:"STORE_MODE"`

	// Google Sheets service account
	ServiceAccountEmail  string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	ServiceAccountKey    string `mapstructure:"GOOGLE_PRIVATE_KEY"` // PEM, \n-escaped
	BOMSpreadsheetID     string `mapstructure:"BOM_SPREADSHEET_ID"`
	StorageSpreadsheetID string `mapstructure:"STORAGE_SPREADSHEET_ID"`
	// The defect-check log historically lived in its own spreadsheet;
	// empty means it shares STORAGE_SPREADSHEET_ID.
	DefectSpreadsheetID string `mapstructure:"DEFECT_SPREADSHEET_ID"`

	// Local workbook (STORE_MODE=local and append fallback target)
	LocalWorkbookPath    string `mapstructure:"LOCAL_WORKBOOK_PATH"`
	FallbackWorkbookPath string `mapstructure:"FALLBACK_WORKBOOK_PATH"`

	// Auth
	SessionSecret   string `mapstructure:"SESSION_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	LoginMaxFails   int    `mapstructure:"LOGIN_MAX_FAILS"`
	LoginWindowMin  int    `mapstructure:"LOGIN_WINDOW_MINUTES"`

	// Optional redis-backed login-attempt store; empty keeps the in-memory one.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORE_MODE", "sheets")
	viper.SetDefault("LOCAL_WORKBOOK_PATH", "testdata/workbook.xlsx")
	viper.SetDefault("FALLBACK_WORKBOOK_PATH", "/tmp/prodlog/fallback.xlsx")
	viper.SetDefault("SESSION_TTL_HOURS", 8)
	viper.SetDefault("LOGIN_MAX_FAILS", 5)
	viper.SetDefault("LOGIN_WINDOW_MINUTES", 15)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// The key arrives \n-escaped when set through a single env line.
	cfg.ServiceAccountKey = strings.ReplaceAll(cfg.ServiceAccountKey, `\n`, "\n")

	if cfg.DefectSpreadsheetID == "" {
		cfg.DefectSpreadsheetID = cfg.StorageSpreadsheetID
	}

	return cfg, nil
}
