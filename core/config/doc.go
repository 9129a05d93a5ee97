// Package config provides configuration management for workday-audit.
//
// It utilizes Viper for loading configuration from a .env file, an optional
// workdays.yaml and environment variables.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into subsections:
//   - Log: logging level, format and optional file
//   - First / Second: sheet name, first data row, 1-based columns and ignored keys per spreadsheet
//   - Check: active status, holidays, ignored key suffix and date separators
//
// Environment variables override file values, e.g. FIRST_SHEET or CHECK_STATUS_AT_WORK.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
