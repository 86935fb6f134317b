package config

import (
	"os"
	"strings"
)

const (
	BackendCSV    = "csv"
	BackendMemory = "memory"
)

type Config struct {
	LedgerPath    string
	LedgerBackend string
	LogPath       string
	AdminUser     string
	AdminPassword string
}

// Load reads the configuration from the environment. Unset variables fall
// back to the defaults of the stand-alone tool.
func Load() Config {
	return Config{
		LedgerPath:    getEnv("VACAYSTAR_LEDGER_PATH", "bookings.csv"),
		LedgerBackend: strings.ToLower(getEnv("VACAYSTAR_LEDGER_BACKEND", BackendCSV)),
		LogPath:       getEnvAllowEmpty("VACAYSTAR_LOG_PATH", "vacaystar.log"),
		AdminUser:     getEnv("VACAYSTAR_ADMIN_USER", "admin"),
		AdminPassword: getEnv("VACAYSTAR_ADMIN_PASSWORD", "1234"),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// getEnvAllowEmpty distinguishes an unset variable from one explicitly set to "".
func getEnvAllowEmpty(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}
