package reconciler

import (
	"fmt"
	"time"
)

// Result represents the outcome of resolving overrides onto a document set.
type Result struct {
	// Set is the resolved document set.
	Set *Set

	// Metadata
	Metadata ResultMetadata

	// Errors are entity scoped faults; the entities they name were left
	// without the failing patch, every other entity was resolved.
	Errors []error
}

// ResultMetadata contains metadata about the resolution.
type ResultMetadata struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Stats     ResultStatistics
}

// ResultStatistics counts what the resolution did.
type ResultStatistics struct {
	// Synthesized counts documents created for entities no game defines.
	Synthesized int
	// GlobalApplied counts pages changed by global patches.
	GlobalApplied int
	// SpecificApplied counts pages changed by source-specific patches.
	SpecificApplied int
	// NoOps counts source-specific patches that matched no page.
	NoOps int
	// Skipped counts patches dropped because of an entity scoped error.
	Skipped int
}

// NewResult creates a new result with defaults.
func NewResult(set *Set) *Result {
	return &Result{
		Set:    set,
		Errors: []error{},
		Metadata: ResultMetadata{
			StartTime: time.Now(),
		},
	}
}

// IsSuccess returns true if no entity scoped error occurred.
func (r *Result) IsSuccess() bool {
	return len(r.Errors) == 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	summary := fmt.Sprintf("Resolved %d document(s): %d global and %d game specific page override(s) applied, %d document(s) added",
		r.Set.Len(), s.GlobalApplied, s.SpecificApplied, s.Synthesized)
	if !r.IsSuccess() {
		summary += fmt.Sprintf(", %d error(s)", len(r.Errors))
	}
	return summary
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}
