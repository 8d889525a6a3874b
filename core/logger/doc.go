// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) tuned for command-line use.
//
// # Run Correlation
//
// A parser invocation scans many files and writes many catalogs. The
// WithRunID helper attaches a generated run_id field to the logger, ensuring
// that all log entries of a single run can be correlated when the output is
// collected centrally.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console (colored, human friendly)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log)
//	log.Info("Extraction finished", zap.Int("keys", n))
package logger
