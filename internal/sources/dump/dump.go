// Package dump reads the per-entity documents written by the FGD dumper and
// yields them as per-game records.
package dump

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/logging"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/reconciler"
	"github.com/s2wiki/pagetools/pkg/save"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Stats counts what the last Records call read and dropped.
type Stats struct {
	// Files is the number of document files read.
	Files int
	// Records is the number of pages returned.
	Records int
	// Malformed is the number of files that could not be decoded.
	Malformed int
	// Skipped is the number of pages dropped because their game is not
	// registered or their name does not match the document.
	Skipped int
}

// Source loads dump documents from a directory.
type Source struct {
	fs       afero.Fs
	dir      string
	registry *sources.Registry

	mu    sync.Mutex
	stats Stats
}

var _ reconciler.Adapter = (*Source)(nil)

// New creates a dump source reading dir on fs. A nil fs uses the OS
// filesystem and a nil registry the built-in games.
func New(fs afero.Fs, dir string, reg *sources.Registry) *Source {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if reg == nil {
		reg = sources.Default()
	}
	return &Source{fs: fs, dir: dir, registry: reg}
}

// Dir returns the dump directory.
func (s *Source) Dir() string {
	return s.dir
}

// Stats returns the counters of the last Records call.
func (s *Source) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Records returns every page of every dump document, ordered by registered
// game and then by document name. A missing directory yields no records.
// Files and pages that cannot be used are skipped and counted.
func (s *Source) Records(ctx context.Context) ([]*pages.Page, error) {
	logger := logging.FromContext(logging.WithOperation(ctx, "dump"))
	var stats Stats

	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info().Str("dir", s.dir).Msg("No dump folder, continuing without records")
			s.setStats(stats)
			return []*pages.Page{}, nil
		}
		return nil, errors.WrapIO("read", s.dir, err)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	byGame := make([][]*pages.Page, s.registry.Len())
	for _, info := range infos {
		if info.IsDir() || info.Name() == constants.TimestampFile {
			continue
		}
		format, ok := save.FormatFromExt(filepath.Ext(info.Name()))
		if !ok {
			continue
		}

		file := filepath.Join(s.dir, info.Name())
		doc, err := s.readDocument(file, format)
		if err != nil {
			stats.Malformed++
			logging.FromContext(logging.WithFile(ctx, file)).Warn().Err(err).Msg("Skipping malformed dump document")
			continue
		}
		stats.Files++

		for _, page := range doc.Pages {
			if page == nil {
				stats.Skipped++
				continue
			}
			if page.Name == "" {
				page.Name = doc.Name
			}
			idx := s.registry.Index(page.Game)
			if idx < 0 || page.Name != doc.Name {
				stats.Skipped++
				pageCtx := logging.WithEntity(logging.WithGame(logging.WithFile(ctx, file), page.Game.String()), page.Name)
				logging.FromContext(pageCtx).Warn().Msg("Skipping dump page with unknown game or mismatched name")
				continue
			}
			byGame[idx] = append(byGame[idx], page)
		}
	}

	records := make([]*pages.Page, 0)
	for _, group := range byGame {
		records = append(records, group...)
	}
	stats.Records = len(records)
	s.setStats(stats)

	logger.Info().Msgf("Found '%d' JSON doc(s)", stats.Files)
	if stats.Malformed > 0 || stats.Skipped > 0 {
		logger.Warn().
			Int("malformed", stats.Malformed).
			Int("skipped", stats.Skipped).
			Msg("Some dump input was skipped")
	}
	return records, nil
}

func (s *Source) readDocument(file string, format save.Format) (*pages.Document, error) {
	data, err := afero.ReadFile(s.fs, file)
	if err != nil {
		return nil, errors.WrapIO("read", file, err)
	}
	if data, err = save.ToJSON(data, format); err != nil {
		return nil, err
	}

	var doc pages.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse(format.String(), file, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return &doc, nil
}

func (s *Source) setStats(stats Stats) {
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}
