// Package platform isolates the OS-specific actions the desktop shell needs:
// locating the documents directory, opening a folder in the system file
// browser and revealing a file. The core only sees the Shell interface.
package platform

import (
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/shared/errs"
)

// Shell is the capability surface injected into the core
type Shell interface {
	DocumentsDir() (string, error)
	OpenFolder(path string) error
	RevealFile(path string) error
}

// Runner launches an external program without waiting for it to exit
type Runner func(name string, args ...string) error

// StartCommand is the default Runner
func StartCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Native implements Shell for the running GOOS
type Native struct {
	run    Runner
	logger *zap.Logger
}

// NewNative creates the shell for the current platform
func NewNative(logger *zap.Logger) *Native {
	return NewNativeWithRunner(StartCommand, logger)
}

// NewNativeWithRunner creates a shell that launches programs through run
func NewNativeWithRunner(run Runner, logger *zap.Logger) *Native {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Native{run: run, logger: logger}
}

// OpenFolder opens path in the system file browser
func (n *Native) OpenFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errs.FromOS("open folder", path, err)
	}
	if !info.IsDir() {
		return errs.New(errs.KindNotADirectory, "open folder", path, nil)
	}

	name, args := openFolderCommand(path)
	n.logger.Debug("Opening folder", zap.String("path", path), zap.String("cmd", name))
	if err := n.run(name, args...); err != nil {
		return errs.New(errs.KindIO, "open folder", path, err)
	}
	return nil
}

// RevealFile shows path selected in the system file browser where the
// platform supports it, otherwise opens its parent folder.
func (n *Native) RevealFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errs.FromOS("reveal file", path, err)
	}

	name, args := revealFileCommand(path)
	n.logger.Debug("Revealing file", zap.String("path", path), zap.String("cmd", name))
	if err := n.run(name, args...); err != nil {
		return errs.New(errs.KindIO, "reveal file", path, err)
	}
	return nil
}

// DocumentsDir returns the user's documents directory
func (n *Native) DocumentsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errs.New(errs.KindNotFound, "documents dir", "", err)
	}
	return documentsDir(home), nil
}

// Fixed is a Shell whose documents directory is pinned, used when the
// configuration overrides it. Folder actions are delegated.
type Fixed struct {
	Shell
	Dir string
}

// DocumentsDir returns the pinned directory
func (f Fixed) DocumentsDir() (string, error) {
	return filepath.Clean(f.Dir), nil
}
