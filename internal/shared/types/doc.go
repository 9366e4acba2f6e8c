// Package types provides shared data structures for the File Architect backend.
//
// This package defines the rows, records and envelopes exchanged between the
// core components and the command surface.
//
// Core Types:
//   - DirectoryEntry: Lightweight directory listing row
//   - FileInfo: Extended listing row with indent hint
//   - Template: Named folder/file blueprint
//   - Service, Tool, Parameter: Command provider definitions
//   - Result: Standard command result
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    []types.DirectoryEntry{{Name: "src", IsDirectory: true}},
//	}
package types
