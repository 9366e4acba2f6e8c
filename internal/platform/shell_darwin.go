//go:build darwin

package platform

import "path/filepath"

func openFolderCommand(path string) (string, []string) {
	return "open", []string{path}
}

func revealFileCommand(path string) (string, []string) {
	return "open", []string{"-R", path}
}

func documentsDir(home string) string {
	return filepath.Join(home, "Documents")
}
