package config

import "time"

// Config holds runtime settings for the jobdesk CLI.
type Config struct {
	// APIBaseURL is the root of the backend REST API, including the /api
	// prefix.
	APIBaseURL string
	// RequestTimeout bounds every single backend call.
	RequestTimeout time.Duration
	// DatabasePath is the sqlite file holding the session and preferences.
	DatabasePath string
	// DownloadsDir is the subdirectory resume downloads are saved into.
	DownloadsDir string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "jobdesk.db"
	c.DownloadsDir = "downloads"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
