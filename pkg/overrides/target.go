// Package overrides loads the hand written corrections that are applied on
// top of generated documents. An override file is named after its target:
// "<entity>.json" patches every game's page of that entity, while
// "<entity>-<game>[-<game>...].json" patches only the listed games.
package overrides

import (
	"slices"
	"strings"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// Target is what an override file name refers to.
type Target struct {
	Entity string
	Games  []sources.ID
}

// IsGlobal reports whether the override applies to every game.
func (t Target) IsGlobal() bool {
	return len(t.Games) == 0
}

// String renders the target back into its file stem.
func (t Target) String() string {
	parts := make([]string, 0, len(t.Games)+1)
	parts = append(parts, t.Entity)
	for _, g := range t.Games {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, constants.TargetSeparator)
}

// ParseTarget splits an override file stem into its entity and game tags.
// Every tag must be registered; an unknown tag is an UnknownSourceError.
// Repeated tags are kept once.
func ParseTarget(stem string, reg *sources.Registry) (Target, error) {
	parts := strings.Split(stem, constants.TargetSeparator)
	entity := strings.TrimSpace(parts[0])
	if entity == "" {
		return Target{}, &errors.ValidationError{
			Field:   "file name",
			Value:   stem,
			Message: "missing entity classname, expected {entityClassname}.json or {entityClassname}-{game}.json",
		}
	}

	t := Target{Entity: entity}
	for _, tag := range parts[1:] {
		if !reg.Has(sources.ID(tag)) {
			return Target{}, reg.UnknownError(tag, "")
		}
		if !slices.Contains(t.Games, sources.ID(tag)) {
			t.Games = append(t.Games, sources.ID(tag))
		}
	}
	return t, nil
}
