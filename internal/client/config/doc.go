// Package config loads runtime configuration for the jobdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override everything earlier.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   path of the local sqlite database file
//
// Environment variables
//
//	JOBDESK_API_BASE_URL
//	JOBDESK_REQUEST_TIMEOUT   (Go duration syntax, e.g. "15s")
//	JOBDESK_DATABASE_PATH
//	JOBDESK_DOWNLOADS_DIR
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so timeouts can be either strings
// like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "15s",
//	  "database_path": "jobdesk.db",
//	  "downloads_dir": "downloads"
//	}
package config
