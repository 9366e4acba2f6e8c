/*
Package monitoring provides Prometheus metrics for the command surface and
the filesystem core.

# Metrics

  - HTTP requests (count, latency, sizes)
  - Command calls by service, command and status, with error kinds
  - Archive extraction entries and bytes written
  - Template seeding outcome and stored template count
  - Uptime

Each Metrics value owns its own registry so tests can create as many as
they need.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	timer := monitoring.NewTimer(metrics, "filesystem", "extract_zip")
	// ... perform operation ...
	timer.Stop("success")
*/
package monitoring
