package save

import (
	"os"
	"strings"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/errors"
)

// Format selects how artifacts are rendered.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Ext returns the file extension artifacts of this format are written with.
func (f Format) Ext() string {
	if f == FormatYAML {
		return constants.ExtYAML
	}
	return constants.ExtJSON
}

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, &errors.ValidationError{Field: "format", Value: s, Message: "must be json or yaml"}
}

// FormatFromExt maps a file extension onto a format. Unknown extensions
// report false.
func FormatFromExt(ext string) (Format, bool) {
	switch strings.ToLower(ext) {
	case constants.ExtJSON:
		return FormatJSON, true
	case constants.ExtYAML, constants.ExtYML:
		return FormatYAML, true
	}
	return FormatJSON, false
}

// Options is the configuration for a Writer.
type Options struct {
	format   Format
	filePerm os.FileMode
	dirPerm  os.FileMode
	dryRun   bool
}

// Format returns the render format.
func (s *Options) Format() Format {
	return s.format
}

// DryRun reports whether writes are only counted.
func (s *Options) DryRun() bool {
	return s.dryRun
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		format:   FormatJSON,
		filePerm: constants.FilePermissions,
		dirPerm:  constants.DirPermissions,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithPermissions overrides the modes of created files and directories.
func WithPermissions(file, dir os.FileMode) Option {
	return func(s *Options) {
		s.filePerm = file
		s.dirPerm = dir
	}
}

// WithDryRun counts what would change without touching the filesystem.
func WithDryRun(enabled bool) Option {
	return func(s *Options) {
		s.dryRun = enabled
	}
}
