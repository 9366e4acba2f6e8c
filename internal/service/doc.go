// Package service provides the command registry behind the invoke surface.
//
// Providers register a service definition whose tool IDs have the form
// "<service>.<command>". The registry indexes the command part so callers
// can invoke "extract_zip" as well as "filesystem.extract_zip". Command
// names are unique across services.
//
// Example Usage:
//
//	registry := service.NewRegistry(logger).WithMetrics(metrics)
//	registry.Register(filesystemProvider)
//	result := registry.Invoke(ctx, "read_directory_structure", params)
package service
