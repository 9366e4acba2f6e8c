// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Components receive a *zap.Logger (usually Named after the component) and
// treat nil as a no-op logger.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Templates seeded", zap.Int("written", 4))
//	logger.Error("Extraction failed", zap.Error(err))
package logging
