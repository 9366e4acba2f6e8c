// Package main is the entry point for the File Architect backend.
//
// The desktop webview calls the backend over loopback HTTP:
//
//	Webview → POST /invoke/<command> → providers → local filesystem
//
// Configuration:
//   - Environment variables (see internal/infrastructure/config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server -port 8000
//	./server -dev -documents /tmp/docs
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
