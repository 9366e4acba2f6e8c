package types

// DirectoryEntry is a single row of a lightweight directory listing
type DirectoryEntry struct {
	Name        string `json:"name"`
	IsDirectory bool   `json:"isDirectory"`
}

// FileInfo is an extended listing row. Indent is a display hint for nested
// previews; Exists is always true for rows read from disk.
type FileInfo struct {
	Name        string `json:"name"`
	Indent      int    `json:"indent"`
	Exists      bool   `json:"exists"`
	IsDirectory bool   `json:"isDirectory"`
}

// ExtractSummary reports what an archive extraction wrote
type ExtractSummary struct {
	Destination string `json:"destination"`
	Format      string `json:"format"`
	Files       int    `json:"files"`
	Directories int    `json:"directories"`
	Bytes       int64  `json:"bytes"`
}
