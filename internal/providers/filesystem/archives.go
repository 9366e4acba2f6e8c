package filesystem

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/providers"
	"github.com/filearchitect/desktop/backend/internal/shared/errs"
	"github.com/filearchitect/desktop/backend/internal/shared/paths"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Archive formats recognised by content sniffing
const (
	FormatZip     = "zip"
	FormatTar     = "tar"
	FormatTarGzip = "tar.gz"
	FormatTarZstd = "tar.zst"
)

// ArchivesOps handles archive extraction
type ArchivesOps struct {
	*FilesystemOps
}

// GetTools returns archive tool definitions
func (a *ArchivesOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.extract_zip",
			Name:        "Extract Archive",
			Description: "Extract a zip, tar, tar.gz or tar.zst archive into a destination directory",
			Parameters: []types.Parameter{
				{Name: "zipPath", Type: "string", Description: "Archive file path", Required: true},
				{Name: "destinationPath", Type: "string", Description: "Destination directory", Required: true},
			},
			Returns: "object",
		},
	}
}

// ExtractCommand decodes arguments and runs Extract
func (a *ArchivesOps) ExtractCommand(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	archive, err := providers.String(params, "zipPath")
	if err != nil {
		return providers.FailureErr(err)
	}
	destination, err := providers.String(params, "destinationPath")
	if err != nil {
		return providers.FailureErr(err)
	}

	summary, err := a.Extract(ctx, archive, destination)
	if err != nil {
		return providers.FailureErr(err)
	}
	return providers.Success(summary)
}

// Extract unpacks every entry of the archive at archivePath into
// destination, creating destination if absent. Entries are written in
// stored order; the first failure aborts and entries already written stay
// on disk.
func (a *ArchivesOps) Extract(ctx context.Context, archivePath, destination string) (*types.ExtractSummary, error) {
	archivePath = paths.ExpandPath(archivePath)
	destination = paths.ExpandPath(destination)

	file, err := os.Open(archivePath)
	if err != nil {
		return nil, errs.New(errs.KindArchiveOpen, "extract", archivePath, err)
	}
	defer file.Close()

	format, err := detectFormat(file)
	if err != nil {
		return nil, errs.New(errs.KindArchiveOpen, "extract", archivePath, err)
	}

	x := &extraction{
		ops:     a.FilesystemOps,
		logger:  a.log().With(zap.String("archive", archivePath), zap.String("format", format)),
		archive: archivePath,
		summary: &types.ExtractSummary{Destination: destination, Format: format},
	}

	switch format {
	case FormatZip:
		err = x.fromZip(file)
	default:
		err = x.fromTar(file, format)
	}
	if err != nil {
		x.logger.Warn("extraction failed", zap.Error(err))
		return nil, err
	}

	if a.Observer != nil {
		a.Observer.RecordExtraction(x.summary.Files, x.summary.Directories, x.summary.Bytes)
	}
	x.logger.Info("extraction complete",
		zap.String("destination", destination),
		zap.Int("files", x.summary.Files),
		zap.Int("directories", x.summary.Directories),
		zap.Int64("bytes", x.summary.Bytes),
	)
	return x.summary, nil
}

// detectFormat sniffs the archive container and rewinds the file.
// Anything unrecognised is treated as zip and left to the zip parser.
func detectFormat(file *os.File) (string, error) {
	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	for m := mtype; m != nil; m = m.Parent() {
		switch {
		case m.Is("application/zip"):
			return FormatZip, nil
		case m.Is("application/x-tar"):
			return FormatTar, nil
		case m.Is("application/gzip"):
			return FormatTarGzip, nil
		case m.Is("application/zstd"):
			return FormatTarZstd, nil
		}
	}
	return FormatZip, nil
}

// extraction carries the state of a single Extract call
type extraction struct {
	ops     *FilesystemOps
	logger  *zap.Logger
	archive string
	summary *types.ExtractSummary
}

func (x *extraction) fromZip(file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return errs.New(errs.KindArchiveOpen, "extract", x.archive, err)
	}

	reader, err := zip.NewReader(file, info.Size())
	if err != nil {
		return errs.New(errs.KindArchiveParse, "extract", x.archive, err)
	}
	if err := x.checkCount(len(reader.File)); err != nil {
		return err
	}

	if err := x.prepareDestination(); err != nil {
		return err
	}

	for i, entry := range reader.File {
		if strings.HasSuffix(entry.Name, "/") {
			if err := x.writeDir(i, entry.Name); err != nil {
				return err
			}
			continue
		}

		if err := x.writeFile(i, entry.Name, func() (io.ReadCloser, error) { return entry.Open() }); err != nil {
			return err
		}
	}
	return nil
}

func (x *extraction) fromTar(file *os.File, format string) error {
	var stream io.Reader = file

	switch format {
	case FormatTarGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			return errs.New(errs.KindArchiveParse, "extract", x.archive, err)
		}
		defer gz.Close()
		stream = gz
	case FormatTarZstd:
		zr, err := zstd.NewReader(file)
		if err != nil {
			return errs.New(errs.KindArchiveParse, "extract", x.archive, err)
		}
		defer zr.Close()
		stream = zr
	}

	reader := tar.NewReader(stream)

	prepared := false
	for i := 0; ; i++ {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errs.Newf(errs.KindArchiveParse, "extract", x.archive, "entry %d: %v", i, err)
		}
		if err := x.checkCount(i + 1); err != nil {
			return err
		}

		// Destination is created once the container is known to be readable
		if !prepared {
			if err := x.prepareDestination(); err != nil {
				return err
			}
			prepared = true
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			name := hdr.Name
			if !strings.HasSuffix(name, "/") {
				name += "/"
			}
			if err := x.writeDir(i, name); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := x.writeFile(i, hdr.Name, func() (io.ReadCloser, error) { return io.NopCloser(reader), nil }); err != nil {
				return err
			}
		default:
			x.logger.Warn("skipping non-regular tar entry",
				zap.Int("index", i),
				zap.String("name", hdr.Name),
				zap.String("type", string(hdr.Typeflag)),
			)
		}
	}

	// An empty tarball still yields the destination directory
	if !prepared {
		return x.prepareDestination()
	}
	return nil
}

func (x *extraction) checkCount(n int) error {
	if limit := x.ops.MaxEntries; limit > 0 && n > limit {
		return errs.Newf(errs.KindArchiveParse, "extract", x.archive, "archive holds more than %d entries", limit)
	}
	return nil
}

func (x *extraction) prepareDestination() error {
	if err := os.MkdirAll(x.summary.Destination, 0o755); err != nil {
		return errs.FromOS("extract", x.summary.Destination, err)
	}
	return nil
}

func (x *extraction) writeDir(index int, name string) error {
	target, err := x.target(index, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return errs.Entry(index, name, err)
	}
	x.summary.Directories++
	return nil
}

func (x *extraction) writeFile(index int, name string, open func() (io.ReadCloser, error)) error {
	target, err := x.target(index, name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errs.Entry(index, name, err)
	}

	src, err := open()
	if err != nil {
		return errs.Entry(index, name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return errs.Entry(index, name, err)
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errs.Entry(index, name, err)
	}

	x.summary.Files++
	x.summary.Bytes += n
	return nil
}

// target validates an entry name and joins it to the destination
func (x *extraction) target(index int, name string) (string, error) {
	if err := validateEntryName(name); err != nil {
		return "", errs.Entry(index, name, err)
	}
	return filepath.Join(x.summary.Destination, filepath.FromSlash(name)), nil
}

// validateEntryName rejects names that could resolve outside the
// destination: absolute paths, drive or UNC prefixes and any ".." segment,
// with either slash style.
func validateEntryName(name string) error {
	trimmed := strings.TrimSuffix(name, "/")
	if trimmed == "" {
		return fmt.Errorf("empty entry name")
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("entry name contains NUL")
	}
	if name[0] == '/' || name[0] == '\\' || filepath.IsAbs(name) {
		return fmt.Errorf("absolute entry name %q", name)
	}
	if len(name) >= 2 && name[1] == ':' && isASCIILetter(name[0]) {
		return fmt.Errorf("drive-qualified entry name %q", name)
	}

	for _, seg := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return fmt.Errorf("entry name %q escapes the destination", name)
		}
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
