// Package logging provides structured logging for setupvar-builder.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the tool. CLI output stays clean by default:
// unless SETUPVAR_LOG_LEVEL is set, all log calls are no-ops.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: per-pass detail (record counts, skipped directives)
//   - Info: normal operations (report parsed, script written)
//   - Warn: non-fatal anomalies (override entries that match nothing)
//   - Error: failures surfaced to the user
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("parsed report",
//	    zap.Int("records", 1250),
//	    zap.Int("settings", 310),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
