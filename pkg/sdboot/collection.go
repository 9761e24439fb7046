package sdboot

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/efikit/bootconf/pkg/fsutil"
)

const (
	loaderConfName = "loader.conf"
	entriesDirName = "entries"
	entryExt       = ".conf"

	confFileMode = 0644
)

// ScanError ties a parse failure to the entry file that caused it. One corrupt
// entry never hides the rest of the boot configuration from inspection.
type ScanError struct {
	Filename string
	Err      error
}

func (e ScanError) Error() string {
	return fmt.Sprintf("entry %s: %s", e.Filename, e.Err)
}

func (e ScanError) Unwrap() error {
	return e.Err
}

// Collection is the top-level handle on a boot loader root directory (the one
// containing loader.conf and entries/). It holds no cached state: every
// operation re-reads from disk, so concurrent edits by other tools are always
// observed, and every write goes through the atomic temp-then-rename protocol.
// Entries and loader configs returned from a Collection are independent values;
// mutating one changes nothing on disk until it is written back.
type Collection struct {
	fsys afero.Fs
	root string
	log  *zap.Logger
}

type CollectionOpt func(*Collection)

// WithFs substitutes the filesystem the collection operates on. Intended for
// tests (afero.NewMemMapFs) and tools working against an image mounted
// elsewhere than the live ESP.
func WithFs(fsys afero.Fs) CollectionOpt {
	return func(c *Collection) {
		c.fsys = fsys
	}
}

// WithLogger attaches a logger used to report per-file scan failures. The
// default is a nop logger.
func WithLogger(log *zap.Logger) CollectionOpt {
	return func(c *Collection) {
		c.log = log
	}
}

// New returns a collection bound to the given loader root directory, typically
// `<esp>/loader`. Discovery of the ESP mount point is the caller's concern.
func New(root string, opts ...CollectionOpt) *Collection {
	c := &Collection{
		fsys: afero.NewOsFs(),
		root: root,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the loader root directory this collection is bound to.
func (c *Collection) Root() string {
	return c.root
}

func (c *Collection) loaderPath() string {
	return filepath.Join(c.root, loaderConfName)
}

func (c *Collection) entriesDir() string {
	return filepath.Join(c.root, entriesDirName)
}

func (c *Collection) entryPath(id string) string {
	return filepath.Join(c.entriesDir(), id+entryExt)
}

// LoaderConfig reads and parses loader.conf. A missing file is not an error:
// it reads as the zero configuration, matching a freshly installed loader that
// has not been configured yet.
func (c *Collection) LoaderConfig() (*LoaderConfig, error) {
	file, err := c.fsys.Open(c.loaderPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &LoaderConfig{}, nil
		}
		return nil, fmt.Errorf("opening %s: %w", loaderConfName, err)
	}
	defer file.Close()
	return ParseLoaderConfig(file)
}

// SaveLoaderConfig serializes cfg and atomically replaces loader.conf. The
// referenced default entry is not required to exist (see LoaderConfig.Default).
func (c *Collection) SaveLoaderConfig(cfg *LoaderConfig) error {
	data, err := cfg.MarshalText()
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(c.fsys, c.loaderPath(), data, confFileMode)
}

// Entries scans the entries directory and returns every parsable entry plus a
// ScanError per file that could not be parsed. Only the directory listing
// itself failing is a hard error. Order follows the filesystem listing; sort
// by ID for deterministic output.
func (c *Collection) Entries() ([]*Entry, []ScanError, error) {
	infos, err := afero.ReadDir(c.fsys, c.entriesDir())
	if err != nil {
		return nil, nil, fmt.Errorf("reading entries directory: %w", err)
	}

	var entries []*Entry
	var failed []ScanError
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, entryExt) {
			continue
		}
		id := strings.TrimSuffix(name, entryExt)

		entry, err := c.readEntry(id)
		if err != nil {
			c.log.Warn("skipping unparsable boot entry",
				zap.String("file", name), zap.Error(err))
			failed = append(failed, ScanError{Filename: name, Err: err})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, failed, nil
}

// Entry reads the single entry with the given id. Returns ErrNotFound if no
// file backs the id; a file that exists but cannot be parsed returns the parse
// error instead.
func (c *Collection) Entry(id string) (*Entry, error) {
	entry, err := c.readEntry(id)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	return entry, err
}

func (c *Collection) readEntry(id string) (*Entry, error) {
	file, err := c.fsys.Open(c.entryPath(id))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseEntry(id, file)
}

// PutEntry serializes the entry and atomically writes it to
// entries/<id>.conf, creating the file if absent and replacing it otherwise.
func (c *Collection) PutEntry(entry *Entry) error {
	if entry.ID == "" {
		return ErrMissingID
	}
	data, err := entry.MarshalText()
	if err != nil {
		return err
	}
	if err := c.fsys.MkdirAll(c.entriesDir(), 0755); err != nil {
		return fmt.Errorf("creating entries directory: %w", err)
	}
	return fsutil.WriteFileAtomic(c.fsys, c.entryPath(entry.ID), data, confFileMode)
}

// RemoveEntry deletes the entry file backing id, or ErrNotFound if there is
// none. Removing the entry loader.conf currently points at is allowed and does
// not touch loader.conf; keeping the default reference consistent is the
// caller's responsibility.
func (c *Collection) RemoveEntry(id string) error {
	path := c.entryPath(id)
	if exists, err := afero.Exists(c.fsys, path); err != nil {
		return fmt.Errorf("checking entry %q: %w", id, err)
	} else if !exists {
		return fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	if err := c.fsys.Remove(path); err != nil {
		return fmt.Errorf("removing entry %q: %w", id, err)
	}
	return nil
}

// EntryExists reports whether an entry file backs the given id.
func (c *Collection) EntryExists(id string) bool {
	exists, err := afero.Exists(c.fsys, c.entryPath(id))
	return err == nil && exists
}

// DefaultState describes whether loader.conf's default points at a real entry.
type DefaultState int

const (
	// DefaultNotSet means loader.conf does not select a default entry.
	DefaultNotSet DefaultState = iota
	// DefaultFound means the configured default has a backing entry file.
	DefaultFound
	// DefaultMissing means the configured default references no known entry.
	DefaultMissing
)

func (s DefaultState) String() string {
	switch s {
	case DefaultFound:
		return "found"
	case DefaultMissing:
		return "missing"
	default:
		return "not set"
	}
}

// DefaultState joins loader.conf's default against the entry files on disk.
// The check is advisory: reads are not transactional across files, so another
// writer can invalidate the answer immediately after it is produced.
func (c *Collection) DefaultState() (DefaultState, error) {
	cfg, err := c.LoaderConfig()
	if err != nil {
		return DefaultNotSet, err
	}
	if cfg.Default == "" {
		return DefaultNotSet, nil
	}
	if c.EntryExists(cfg.Default) {
		return DefaultFound, nil
	}
	return DefaultMissing, nil
}
