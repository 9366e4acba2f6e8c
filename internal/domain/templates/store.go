package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/saintfish/chardet"
	"go.uber.org/zap"

	"github.com/filearchitect/desktop/backend/internal/infrastructure/logging"
	"github.com/filearchitect/desktop/backend/internal/platform"
	"github.com/filearchitect/desktop/backend/internal/shared/errs"
	"github.com/filearchitect/desktop/backend/internal/shared/paths"
	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

// Observer receives template store statistics
type Observer interface {
	AddTemplatesSeeded(count int)
	SetTemplatesStored(count int)
}

// Config locates the store below the documents directory
type Config struct {
	ProductName string
	Subdir      string
}

// Store persists templates as <name>.txt files in a single directory.
// Every call re-reads the filesystem; nothing is cached.
type Store struct {
	shell    platform.Shell
	cfg      Config
	defaults []types.Template
	logger   *zap.Logger
	observer Observer
}

// NewStore creates a store that resolves its directory through shell
func NewStore(shell platform.Shell, cfg Config, logger *zap.Logger) *Store {
	return &Store{
		shell:    shell,
		cfg:      cfg,
		defaults: Defaults(),
		logger:   logging.OrNop(logger),
	}
}

// WithMetrics attaches a statistics observer
func (s *Store) WithMetrics(observer Observer) *Store {
	s.observer = observer
	return s
}

// WithDefaults replaces the built-in default set
func (s *Store) WithDefaults(defaults []types.Template) *Store {
	s.defaults = defaults
	return s
}

// Dir resolves the store directory, creating it if absent
func (s *Store) Dir() (string, error) {
	documents, err := s.shell.DocumentsDir()
	if err != nil {
		return "", errs.New(errs.KindIO, "templates_dir", "", err)
	}

	dir := paths.TemplatesDir(documents, s.cfg.ProductName, s.cfg.Subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.FromOS("templates_dir", dir, err)
	}
	return dir, nil
}

// InitializeApp prepares the store on startup
func (s *Store) InitializeApp() error {
	return s.EnsureDefaultsSeeded()
}

// EnsureDefaultsSeeded writes every default whose name is not taken, then
// the sentinel. Once the sentinel exists it does nothing. Safe to call on
// every start.
func (s *Store) EnsureDefaultsSeeded() error {
	dir, err := s.Dir()
	if err != nil {
		return err
	}

	sentinel := filepath.Join(dir, paths.DefaultsSentinel)
	present, err := fileExists(sentinel)
	if err != nil {
		return errs.FromOS("seed", sentinel, err)
	}

	existing := map[string]bool{}
	if !present {
		existing, err = existingNames(dir)
		if err != nil {
			return err
		}
	}

	plan := planSeeding(present, existing, s.defaults)
	if present {
		s.logger.Debug("defaults already seeded", zap.String("dir", dir))
		return nil
	}

	for _, t := range plan {
		if err := writeAtomic(dir, templatePath(dir, t.Name), t.Content); err != nil {
			return err
		}
		s.logger.Info("seeded default template", zap.String("name", t.Name))
	}

	if err := os.WriteFile(sentinel, nil, 0o644); err != nil {
		return errs.FromOS("seed", sentinel, err)
	}

	if s.observer != nil {
		s.observer.AddTemplatesSeeded(len(plan))
	}
	s.logger.Info("default templates initialized",
		zap.String("dir", dir),
		zap.Int("written", len(plan)),
		zap.Int("skipped", len(s.defaults)-len(plan)),
	)
	return nil
}

// List returns every readable template, ordered by front matter order
// (templates without one last) and then by name. Unreadable or non-UTF-8
// files are logged and skipped.
func (s *Store) List() ([]types.Template, error) {
	dir, err := s.Dir()
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "*"+paths.TemplateExt, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errs.New(errs.KindIO, "list_templates", dir, err)
	}

	templates := make([]types.Template, 0, len(matches))
	for _, match := range matches {
		file := filepath.Join(dir, match)

		data, err := os.ReadFile(file)
		if err != nil {
			s.logger.Warn("skipping unreadable template", zap.String("file", file), zap.Error(err))
			continue
		}
		if !utf8.Valid(data) {
			s.logger.Warn("skipping template that is not valid UTF-8",
				zap.String("file", file),
				zap.String("charset_guess", guessCharset(data)),
			)
			continue
		}

		content := string(data)
		templates = append(templates, types.Template{
			Name:    strings.TrimSuffix(match, paths.TemplateExt),
			Content: content,
			Order:   parseOrder(content),
		})
	}

	sortTemplates(templates)

	if s.observer != nil {
		s.observer.SetTemplatesStored(len(templates))
	}
	return templates, nil
}

// Save writes content to <name>.txt, replacing any existing template.
// Readers never observe a partially written file.
func (s *Store) Save(name, content string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	dir, err := s.Dir()
	if err != nil {
		return err
	}

	if err := writeAtomic(dir, templatePath(dir, name), content); err != nil {
		return err
	}
	s.logger.Info("saved template", zap.String("name", name), zap.Int("bytes", len(content)))
	return nil
}

// Reorder stores a 1-based order in the front matter of each named
// template, following the order of names. All names must exist.
func (s *Store) Reorder(names []string) error {
	dir, err := s.Dir()
	if err != nil {
		return err
	}

	contents := make([]string, len(names))
	for i, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		data, err := os.ReadFile(templatePath(dir, name))
		if err != nil {
			return errs.FromOS("reorder", name, err)
		}
		contents[i] = string(data)
	}

	for i, name := range names {
		updated, err := withOrder(contents[i], i+1)
		if err != nil {
			return errs.New(errs.KindIO, "reorder", name, err)
		}
		if err := writeAtomic(dir, templatePath(dir, name), updated); err != nil {
			return err
		}
	}

	s.logger.Info("reordered templates", zap.Strings("names", names))
	return nil
}

// ValidateName rejects names that do not map to exactly one file in the
// store directory
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errs.Newf(errs.KindInvalidArgument, "template", name, "name is empty")
	case name == "." || name == "..":
		return errs.Newf(errs.KindInvalidArgument, "template", name, "name is reserved")
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0):
		return errs.Newf(errs.KindInvalidArgument, "template", name, "name contains a path separator")
	}
	return nil
}

func templatePath(dir, name string) string {
	return filepath.Join(dir, name+paths.TemplateExt)
}

// writeAtomic writes content next to target and renames it into place
func writeAtomic(dir, target, content string) error {
	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return errs.FromOS("write_template", target, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return errs.FromOS("write_template", target, err)
	}
	return nil
}

// existingNames collects the extension-less names of every entry in dir
func existingNames(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.FromOS("seed", dir, err)
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[stem(e.Name())] = true
	}
	return names, nil
}

// stem drops the last extension; dotfiles without another dot keep their name
func stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func sortTemplates(list []types.Template) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].Order, list[j].Order
		switch {
		case a != nil && b != nil && *a != *b:
			return *a < *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return list[i].Name < list[j].Name
	})
}

func guessCharset(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return "unknown"
	}
	return result.Charset
}
