package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/voltkid/internal/levels/formats"
)

//go:embed builtin/*.yaml builtin/*.json
var builtinFS embed.FS

// ErrLevelNotFound is returned when no level has the requested id.
var ErrLevelNotFound = errors.New("levels: level not found")

// Loader handles loading levels from a directory tree.
type Loader struct {
	Root   string
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader reading from a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewBuiltinLoader creates a loader for the level pack compiled into the binary.
func NewBuiltinLoader() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin pack: %v", err))
	}
	return NewFSLoader("builtin", sub)
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(name string, fsys fs.FS) *Loader {
	return &Loader{Root: name, fsys: fsys}
}

// WithLogger makes the loader report files it skips.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	l.logger = logger
	return l
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped.
// Returns levels sorted by ID; on duplicate ids the first file wins.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	byID := make(map[int]string)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		loaded, err := l.LoadFile(p)
		if err != nil {
			l.skip(p, err)
			return nil
		}

		for _, lvl := range loaded {
			if prev, dup := byID[lvl.ID]; dup {
				l.skip(p, fmt.Errorf("level %d already defined in %s", lvl.ID, prev))
				continue
			}
			byID[lvl.ID] = p
			levels = append(levels, lvl)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads and validates every level in a single file.
// p is relative to the loader root.
func (l *Loader) LoadFile(p string) ([]Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	parse, err := formats.ParserFor(path.Ext(p))
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", p, err)
	}
	parsed, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	out := make([]Level, 0, len(parsed))
	for _, pl := range parsed {
		lvl := fromParsed(pl, path.Join(l.Root, p))
		if err := Validate(lvl); err != nil {
			return nil, fmt.Errorf("levels: %s: %w", p, err)
		}
		out = append(out, lvl)
	}
	return out, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id int) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %d", ErrLevelNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]int, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func (l *Loader) skip(p string, err error) {
	if l.logger != nil {
		l.logger.Warn("skipping level file", "file", p, "error", err)
	}
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
