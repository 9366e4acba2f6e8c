package types

// Template is a named blueprint describing a folder/file hierarchy.
// Name is unique within a store and maps to exactly one backing file.
type Template struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Order   *int   `json:"order,omitempty"` // From YAML front matter, if any
}
