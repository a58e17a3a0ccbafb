package config

import (
	"os"
	"strconv"
)

type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Storage StorageConfig
	Sheets  SheetsConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// StorageConfig selects the backing store. "google" talks to the shared
// spreadsheet; "sqlite" keeps everything in a local file for offline use.
type StorageConfig struct {
	Backend    string
	SQLitePath string
}

type SheetsConfig struct {
	// SpreadsheetName is tried first; AltName is the historical casing of the
	// same document and is tried once before giving up.
	SpreadsheetName string
	AltName         string
	CredentialsFile string
	SecretEnv       string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", "google"),
			SQLitePath: getEnv("SQLITE_PATH", "sirumat.db"),
		},
		Sheets: SheetsConfig{
			SpreadsheetName: getEnv("SHEETS_SPREADSHEET_NAME", "database_sirumat"),
			AltName:         getEnv("SHEETS_SPREADSHEET_ALT_NAME", "Database_SiRumat"),
			CredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", "service_account.json"),
			SecretEnv:       getEnv("SHEETS_SECRET_ENV", "SHEETS_SERVICE_ACCOUNT_JSON"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
