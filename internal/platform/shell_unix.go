//go:build !darwin && !windows

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

func openFolderCommand(path string) (string, []string) {
	return "xdg-open", []string{path}
}

// xdg-open cannot select a file, so the parent folder is opened instead
func revealFileCommand(path string) (string, []string) {
	return "xdg-open", []string{filepath.Dir(path)}
}

func documentsDir(home string) string {
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); dir != "" {
		dir = strings.Replace(dir, "$HOME", home, 1)
		if filepath.IsAbs(dir) {
			return dir
		}
	}
	return filepath.Join(home, "Documents")
}
