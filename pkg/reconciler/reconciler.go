// Package reconciler turns per-game records into one document per entity and
// resolves overrides onto them. Resolution runs in two phases: every global
// patch is applied to every page of its entity before any source-specific
// patch is applied, so a game specific correction always wins over a global
// one regardless of file order.
package reconciler

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/logging"
	"github.com/s2wiki/pagetools/pkg/overrides"
	"github.com/s2wiki/pagetools/pkg/pages"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// ErrNameMismatch is wrapped by the EntityError reported for a patch whose
// body names a different entity than its file.
var ErrNameMismatch = errors.New("override Name does not match its file name")

// ErrUnresolved is returned by a strict reconciler when entity scoped errors
// occurred.
var ErrUnresolved = errors.New("overrides could not be applied")

// Reconciler resolves overrides onto a document set.
type Reconciler interface {
	// Resolve applies patches onto set in place. Entity scoped faults are
	// collected in Result.Errors and never stop other entities.
	Resolve(ctx context.Context, set *Set, patches *overrides.Patches) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	registry *sources.Registry
	strict   bool
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		registry: options.registry,
		strict:   options.strict,
	}, nil
}

// Resolve performs the two-phase resolution.
func (r *reconciler) Resolve(ctx context.Context, set *Set, patches *overrides.Patches) (*Result, error) {
	if set == nil {
		return nil, &errors.ValidationError{Field: "set", Message: "cannot be nil"}
	}
	ctx = logging.WithOperation(ctx, "resolve")
	logger := logging.FromContext(ctx)
	result := NewResult(set)

	var entries []overrides.Entry
	if patches != nil {
		entries = r.validate(result, patches.Entries)
	}

	r.synthesize(logger, result, entries)

	global, specific := split(entries)

	logger.Info().Msgf("Loaded '%d' global page override(s).", len(global))
	for _, e := range global {
		doc, _ := set.Get(e.Target.Entity)
		for _, page := range doc.Pages {
			logger.Debug().Msgf("Overriding page '%s' from game '%s'", page.Name, page.Game)
			page.OverrideFrom(e.Patch)
			result.Metadata.Stats.GlobalApplied++
		}
	}

	logger.Info().Msgf("Loaded '%d' game specific page override(s).", len(specific))
	for _, e := range specific {
		doc, _ := set.Get(e.Target.Entity)
		matched := doc.PagesFor(e.Game)
		if len(matched) == 0 {
			result.Metadata.Stats.NoOps++
			entityCtx := logging.WithGame(logging.WithEntity(ctx, e.Target.Entity), e.Game.String())
			logging.FromContext(entityCtx).Debug().Msg("Entity does not exist in this game, override ignored")
			continue
		}
		for _, page := range matched {
			logger.Debug().Msgf("Overriding page '%s' from game '%s'", page.Name, page.Game)
			page.OverrideFrom(e.Patch)
			result.Metadata.Stats.SpecificApplied++
		}
	}

	result.Finalize()

	if r.strict && !result.IsSuccess() {
		return result, fmt.Errorf("%w: %w", ErrUnresolved, errors.Join(result.Errors...))
	}
	return result, nil
}

// validate drops entries that cannot be applied, recording one EntityError
// per offending file.
func (r *reconciler) validate(result *Result, entries []overrides.Entry) []overrides.Entry {
	valid := make([]overrides.Entry, 0, len(entries))
	reported := make(map[string]bool)

	for _, e := range entries {
		var fault error
		switch {
		case e.Patch == nil:
			fault = fmt.Errorf("override %s has no body", e.File)
		case e.Patch.Page.Name != e.Target.Entity:
			fault = fmt.Errorf("%w: %s names %q", ErrNameMismatch, e.File, e.Patch.Page.Name)
		}
		if fault == nil {
			valid = append(valid, e)
			continue
		}

		result.Metadata.Stats.Skipped++
		if !reported[e.File] {
			reported[e.File] = true
			result.Errors = append(result.Errors, errors.NewEntityError(e.Target.Entity, e.Game.String(), fault))
		}
	}
	return valid
}

// synthesize creates a document for every targeted entity no game defines.
// Its games are every registered game when any entry targets the entity
// globally, otherwise the union of all declared tags in registry order.
func (r *reconciler) synthesize(logger *zerolog.Logger, result *Result, entries []overrides.Entry) {
	var missing []string
	declared := make(map[string][]sources.ID)
	broadcast := make(map[string]bool)

	for _, e := range entries {
		entity := e.Target.Entity
		if _, ok := result.Set.Get(entity); ok {
			continue
		}
		if _, seen := declared[entity]; !seen {
			missing = append(missing, entity)
			declared[entity] = nil
		}
		if e.Target.IsGlobal() {
			broadcast[entity] = true
			continue
		}
		for _, game := range e.Target.Games {
			if !slices.Contains(declared[entity], game) {
				declared[entity] = append(declared[entity], game)
			}
		}
	}

	for _, entity := range missing {
		logger.Info().Msgf("Could not match any entity to '%s' override, adding as non-FGD entity!", entity)

		games := r.registry.IDs()
		if !broadcast[entity] {
			games = r.inRegistryOrder(declared[entity])
		}

		doc := pages.NewDocument(entity)
		for _, game := range games {
			doc.Add(&pages.Page{
				Game:       game,
				EntityType: pages.EntityTypeDefault,
				Name:       entity,
				NonFGD:     true,
			})
		}
		result.Set.Put(doc)
		result.Metadata.Stats.Synthesized++
	}
}

// inRegistryOrder sorts games by registration position. Unregistered games
// keep their relative order after the registered ones.
func (r *reconciler) inRegistryOrder(games []sources.ID) []sources.ID {
	ordered := slices.Clone(games)
	slices.SortStableFunc(ordered, func(a, b sources.ID) int {
		ia, ib := r.registry.Index(a), r.registry.Index(b)
		if ia < 0 {
			ia = r.registry.Len()
		}
		if ib < 0 {
			ib = r.registry.Len()
		}
		return cmp.Compare(ia, ib)
	})
	return ordered
}

func split(entries []overrides.Entry) (global, specific []overrides.Entry) {
	for _, e := range entries {
		if e.IsGlobal() {
			global = append(global, e)
		} else {
			specific = append(specific, e)
		}
	}
	return global, specific
}
