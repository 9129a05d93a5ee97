// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and an optional log file written next to the console output.
//
// # Run Correlation
//
// Each audit run gets its own run_id. WithRunID attaches it to the logger so
// that all report lines of one run can be correlated when several runs append to the same file.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (colored) or json
//   - File: optional path of an additional log file
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Audit started", zap.String("run", runID))
package logger
