package pagetools

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/s2wiki/pagetools/internal/sources/dump"
	"github.com/s2wiki/pagetools/pkg/reconciler"
	"github.com/s2wiki/pagetools/pkg/save"
)

// Result describes one generation run.
type Result struct {
	// Resolve is the outcome of override resolution, including entity
	// scoped errors.
	Resolve *reconciler.Result

	// Dump holds the dump reader counters, nil for other adapters.
	Dump *dump.Stats

	// Documents and Pages count written and unchanged artifacts.
	Documents save.Stats
	Pages     save.Stats

	// IndexWritten and ManifestWritten report whether those files changed.
	IndexWritten    bool
	ManifestWritten bool

	DryRun   bool
	Duration time.Duration
}

// Changed reports whether the run wrote any artifact.
func (r *Result) Changed() bool {
	return r.Documents.Written > 0 || r.Pages.Written > 0 || r.IndexWritten
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Wrote '%d' document(s), skipped '%d' document(s) with contents that did not change; "+
		"wrote '%d' page(s), skipped '%d' page(s) with contents that did not change",
		r.Documents.Written, r.Documents.Skipped, r.Pages.Written, r.Pages.Skipped)
}

// Manifest summarises the last run that changed anything.
type Manifest struct {
	GeneratedAt utc.Time `json:"GeneratedAt"`
	Documents   int      `json:"Documents"`
	Pages       int      `json:"Pages"`
	Skipped     int      `json:"Skipped"`
}

func newManifest(r *Result) Manifest {
	return Manifest{
		GeneratedAt: utc.Now(),
		Documents:   r.Documents.Total(),
		Pages:       r.Pages.Total(),
		Skipped:     r.Documents.Skipped + r.Pages.Skipped,
	}
}
