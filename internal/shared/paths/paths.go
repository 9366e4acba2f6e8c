package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Persisted layout
const (
	ProductName      = "FileArchitect"
	TemplatesSubdir  = "Templates"
	TemplateExt      = ".txt"
	DefaultsSentinel = ".defaults_initialized"
)

// HomeShorthand is the leading marker replaced by the home directory
const HomeShorthand = "~"

// ExpandPath replaces a leading home shorthand with the user's home
// directory. The input is returned unchanged when the home directory cannot
// be determined.
func ExpandPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return ExpandPathWithHome(path, home)
}

// ExpandPathWithHome is ExpandPath with an explicit home directory
func ExpandPathWithHome(path, home string) string {
	if !strings.HasPrefix(path, HomeShorthand) || home == "" {
		return path
	}
	if path == HomeShorthand {
		return home
	}

	rest := path[len(HomeShorthand):]
	if !isSeparator(rest[0]) {
		// "~user" style prefixes are not expanded
		return path
	}
	return filepath.Join(home, rest[1:])
}

// Exists reports whether path (after expansion) exists
func Exists(path string) bool {
	_, err := os.Stat(ExpandPath(path))
	return err == nil
}

// TemplatesDir returns the template store location under documents
func TemplatesDir(documents, product, subdir string) string {
	if product == "" {
		product = ProductName
	}
	if subdir == "" {
		subdir = TemplatesSubdir
	}
	return filepath.Join(documents, product, subdir)
}

// IsHidden reports whether a directory entry name is hidden
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isSeparator(c byte) bool {
	return c == '/' || c == filepath.Separator
}
