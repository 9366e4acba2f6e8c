// Package config loads backend configuration from environment variables
// using envconfig. Every field has a default, so an empty environment
// yields a working loopback server with the standard template location.
//
// Environment Variables:
//   - PORT, HOST: listen address of the command surface
//   - LOG_LEVEL, LOG_DEV: logging level and console mode
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED: per-client limits
//   - FA_PRODUCT_NAME, FA_DOCUMENTS_DIR, FA_TEMPLATES_SUBDIR: template store location
//   - FA_ARCHIVE_MAX_ENTRIES: upper bound on archive entries (0 = unlimited)
package config
