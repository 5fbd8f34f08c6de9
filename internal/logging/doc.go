// Package logging provides structured logging for segbar.
//
// This package wraps a global zap logger with convenience functions. The
// logger is silent unless SEGBAR_LOG_LEVEL is set, so library users and
// CLI output are not disturbed by default.
//
// # Log Levels
//
//   - Debug: layout resolution, color binding, individual draws, unwinds
//   - Info: bar initialization and teardown
//   - Warn: non-fatal backend issues (close errors during unwind)
//   - Error: command failures
//
// # Structured Logging
//
//	logging.Info("Bar initialized",
//	    zap.Stringer("layout", layout),
//	    zap.String("fg", fg.Hex()),
//	)
//
// # Configuration
//
//	if err := logging.Initialize(""); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Logs go to stderr in console format so they never mix with rendered
// terminal output or image data written to stdout.
package logging
