package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables win over it (godotenv never overwrites existing ones).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JOBDESK_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("JOBDESK_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("JOBDESK_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("JOBDESK_DOWNLOADS_DIR"); v != "" {
		cfg.DownloadsDir = v
	}
}
