// Package server wires the backend together.
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger, metrics and tracer
//  3. Resolve the platform shell (documents directory, file browser)
//  4. Register the filesystem, templates and system providers
//  5. Seed default templates on first run
//  6. Setup HTTP routes and middleware
//  7. Serve until Shutdown
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go srv.Run()
//	defer srv.Shutdown(ctx)
package server
