package filesystem

import (
	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/infrastructure/logging"
)

// ExtractObserver receives a summary of each completed extraction
type ExtractObserver interface {
	RecordExtraction(files, directories int, bytes int64)
}

// FilesystemOps holds the dependencies shared by all filesystem modules
type FilesystemOps struct {
	Logger   *zap.Logger
	Deleter  Deleter
	Observer ExtractObserver

	// MaxEntries bounds the number of entries an archive may hold.
	// Zero means unlimited.
	MaxEntries int
}

// NewOps creates the shared filesystem dependencies.
// A nil deleter means OSDeleter.
func NewOps(logger *zap.Logger, deleter Deleter) *FilesystemOps {
	if deleter == nil {
		deleter = OSDeleter{}
	}
	return &FilesystemOps{
		Logger:  logging.OrNop(logger),
		Deleter: deleter,
	}
}

func (ops *FilesystemOps) log() *zap.Logger {
	return logging.OrNop(ops.Logger)
}
