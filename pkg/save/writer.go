// Package save writes generated artifacts. A Writer only touches a file when
// its rendered contents differ from what is already on disk, so a run that
// changes nothing leaves every modification time alone.
package save

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/s2wiki/pagetools/pkg/errors"
)

// Stats counts the outcome of WriteIfChanged calls.
type Stats struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
}

// Total returns the number of artifacts considered.
func (s Stats) Total() int {
	return s.Written + s.Skipped
}

// Writer performs content-compared writes on a filesystem.
type Writer struct {
	fs      afero.Fs
	options Options

	mu    sync.Mutex
	stats Stats
}

// NewWriter creates a Writer on fs. A nil fs means the OS filesystem.
func NewWriter(fs afero.Fs, opts ...Option) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{
		fs:      fs,
		options: Defaults().Apply(opts...),
	}
}

// Format returns the format artifacts are rendered in.
func (w *Writer) Format() Format {
	return w.options.format
}

// Fs returns the filesystem the writer writes to.
func (w *Writer) Fs() afero.Fs {
	return w.fs
}

// WriteIfChanged writes data to path unless the file already holds exactly
// data. Missing parent directories are created. It reports whether a write
// happened (or, in dry-run mode, would have happened).
func (w *Writer) WriteIfChanged(path string, data []byte) (bool, error) {
	existing, err := afero.ReadFile(w.fs, path)
	switch {
	case err == nil:
		if bytes.Equal(existing, data) {
			w.count(false)
			return false, nil
		}
	case !os.IsNotExist(err):
		return false, errors.WrapIO("read", path, err)
	}

	if w.options.dryRun {
		w.count(true)
		return true, nil
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), w.options.dirPerm); err != nil {
		return false, errors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(w.fs, path, data, w.options.filePerm); err != nil {
		return false, errors.WrapIO("write", path, err)
	}

	w.count(true)
	return true, nil
}

// Save encodes v in the writer's format and writes it if changed.
func (w *Writer) Save(path string, v any) (bool, error) {
	data, err := Encode(v, w.options.format)
	if err != nil {
		return false, errors.WrapResource("encode", "artifact", path, err)
	}
	return w.WriteIfChanged(path, data)
}

// Stats returns the counts accumulated since the last Reset.
func (w *Writer) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Reset clears the accumulated counts.
func (w *Writer) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats = Stats{}
}

func (w *Writer) count(written bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if written {
		w.stats.Written++
	} else {
		w.stats.Skipped++
	}
}
