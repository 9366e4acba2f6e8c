//go:build windows

package platform

import (
	"os"
	"path/filepath"
)

func openFolderCommand(path string) (string, []string) {
	return "explorer", []string{path}
}

func revealFileCommand(path string) (string, []string) {
	return "explorer", []string{"/select,", path}
}

func documentsDir(home string) string {
	if profile := os.Getenv("USERPROFILE"); profile != "" {
		home = profile
	}
	return filepath.Join(home, "Documents")
}
