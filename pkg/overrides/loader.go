package overrides

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/logging"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/save"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Patterns select override files by name. Other files are ignored.
var Patterns = []string{"*.json", "*.yaml", "*.yml"}

// IsOverrideFile reports whether name (a base name or a path) is an
// override file.
func IsOverrideFile(name string) bool {
	base := path.Base(filepath.ToSlash(name))
	for _, pat := range Patterns {
		if matched, err := doublestar.Match(pat, base); err == nil && matched {
			return true
		}
	}
	return false
}

// Entry is one loaded patch bound to at most one game.
type Entry struct {
	Target Target
	// Game is the game a source-specific entry applies to. It is empty for
	// global entries.
	Game  sources.ID
	Patch *pages.Patch
	File  string
}

// IsGlobal reports whether the entry applies to every page of its entity.
func (e Entry) IsGlobal() bool {
	return e.Game == ""
}

// Patches holds loaded entries in file order. A file naming several games
// yields one entry per game, each with its patch bound to that game.
type Patches struct {
	Entries []Entry
	Files   int
}

// Global returns the global entries in file order.
func (p *Patches) Global() []Entry {
	return p.filter(true)
}

// Specific returns the source-specific entries in file order.
func (p *Patches) Specific() []Entry {
	return p.filter(false)
}

// Len returns the number of entries.
func (p *Patches) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

func (p *Patches) filter(global bool) []Entry {
	if p == nil {
		return nil
	}
	var out []Entry
	for _, e := range p.Entries {
		if e.IsGlobal() == global {
			out = append(out, e)
		}
	}
	return out
}

// Loader reads override files from a directory.
type Loader struct {
	fs       afero.Fs
	dir      string
	registry *sources.Registry
}

// NewLoader creates a loader for dir on fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs, dir string, reg *sources.Registry) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if reg == nil {
		reg = sources.Default()
	}
	return &Loader{fs: fs, dir: dir, registry: reg}
}

// Dir returns the directory the loader reads.
func (l *Loader) Dir() string {
	return l.dir
}

// Load reads every override file, sorted by name. A missing directory yields
// no patches. An unknown game tag or a malformed body aborts the whole load.
func (l *Loader) Load(ctx context.Context) (*Patches, error) {
	logger := logging.FromContext(ctx)
	patches := &Patches{}

	infos, err := afero.ReadDir(l.fs, l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Str("dir", l.dir).Msg("No overrides folder, continuing without overrides")
			return patches, nil
		}
		return nil, errors.WrapIO("read", l.dir, err)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	for _, info := range infos {
		if info.IsDir() || !IsOverrideFile(info.Name()) {
			continue
		}
		entries, err := l.loadFile(info.Name())
		if err != nil {
			return nil, err
		}
		patches.Entries = append(patches.Entries, entries...)
		patches.Files++
	}

	logger.Debug().
		Int("files", patches.Files).
		Int("global", len(patches.Global())).
		Int("specific", len(patches.Specific())).
		Msg("Loaded overrides")
	return patches, nil
}

func (l *Loader) loadFile(name string) ([]Entry, error) {
	ext := filepath.Ext(name)
	format, _ := save.FormatFromExt(ext)
	file := filepath.Join(l.dir, name)

	target, err := ParseTarget(strings.TrimSuffix(name, ext), l.registry)
	if err != nil {
		if unknown, ok := err.(*errors.UnknownSourceError); ok {
			unknown.File = name
		}
		return nil, err
	}

	data, err := afero.ReadFile(l.fs, file)
	if err != nil {
		return nil, errors.WrapIO("read", file, err)
	}
	patch, err := pages.DecodePatch(data, format)
	if err != nil {
		return nil, errors.WrapParse(format.String(), file, err)
	}

	if target.IsGlobal() {
		return []Entry{{Target: target, Patch: patch, File: file}}, nil
	}

	entries := make([]Entry, 0, len(target.Games))
	for _, game := range target.Games {
		bound := &pages.Patch{Page: *patch.Page.Clone(), Clear: patch.Clear}
		bound.Page.Game = game
		entries = append(entries, Entry{Target: target, Game: game, Patch: bound, File: file})
	}
	return entries, nil
}
