// Package providers holds the command providers behind the invoke surface
// and the helpers they share.
//
// Available Providers:
//   - filesystem: Path expansion, listings, removal, archive extraction
//   - templates (internal/domain/templates): Template store commands
//   - system: Open a folder or reveal a file in the OS file browser
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with decoded JSON arguments
//
// Every provider reports failures in the returned Result rather than as a Go
// error; the error return is reserved for unknown tool IDs.
//
// Example Usage:
//
//	path, err := providers.String(params, "path")
//	if err != nil {
//	    return providers.FailureErr(err)
//	}
package providers
