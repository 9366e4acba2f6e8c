// Package filesystem implements the local filesystem commands.
//
// This package is organized into specialized modules:
//   - paths: Tilde expansion and existence checks
//   - directory: Sorted, hidden-filtered listings and recursive trees
//   - remove: Single-file and general path removal
//   - archives: Extraction of zip, tar, tar.gz and tar.zst archives
//
// Each module exposes typed methods (ListEntries, RemovePath, Extract, ...)
// that return *errs.Error on failure, plus command wrappers that decode
// invoke arguments and translate errors into a types.Result.
//
// Listing order is a hard contract: directories before files, then names in
// ascending byte order, independent of locale and platform.
//
// Example Usage:
//
//	ops := filesystem.NewOps(logger, filesystem.OSDeleter{})
//	dirs := &filesystem.DirectoryOps{FilesystemOps: ops}
//	entries, err := dirs.ListEntries("~/Projects")
package filesystem
