// Package http serves the command surface used by the desktop webview.
//
// Routes:
//   - POST /invoke/:command: JSON object body as arguments, Result as response
//   - GET /commands: service definitions and command names
//   - GET /health: liveness, registry stats and running totals
//   - GET /metrics: Prometheus exposition
package http
