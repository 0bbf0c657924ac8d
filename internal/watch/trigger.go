// Package watch re-runs the page generation whenever an override file is
// created, modified or renamed.
//
// Accepted events feed a single-slot queue drained by one worker, so at most
// one regeneration runs at a time and a burst of events arriving during a run
// queues exactly one follow-up run.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/logging"
)

// ErrRegenerationPanicked wraps the value recovered from a panicking
// regeneration.
var ErrRegenerationPanicked = errors.New("regeneration panicked")

// State is the state of a Trigger.
type State int32

const (
	// Idle means no regeneration is running.
	Idle State = iota
	// Regenerating means a regeneration is in progress.
	Regenerating
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Regenerating:
		return "regenerating"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Config holds the parameters for a Trigger.
type Config struct {
	// Dir is the directory to watch. Only its direct children are matched.
	Dir string

	// Patterns are doublestar patterns matched against the base name of a
	// changed file. An empty slice accepts every file.
	Patterns []string

	// Regenerate runs the pipeline. Its context is never cancelled so a run
	// always completes. A returned error is logged and the trigger keeps
	// watching.
	Regenerate func(ctx context.Context) error
}

// Trigger watches a directory and serializes regenerations.
type Trigger struct {
	cfg   Config
	dir   string
	fsw   *fsnotify.Watcher
	queue chan string

	started  atomic.Bool
	state    atomic.Int32
	runs     atomic.Uint64
	failures atomic.Uint64
}

// New creates a Trigger from cfg and starts watching cfg.Dir.
func New(cfg Config) (*Trigger, error) {
	if cfg.Regenerate == nil {
		return nil, &errors.ValidationError{Field: "Regenerate", Message: "cannot be nil"}
	}
	if cfg.Dir == "" {
		return nil, &errors.ValidationError{Field: "Dir", Message: "cannot be empty"}
	}
	for _, pat := range cfg.Patterns {
		if !doublestar.ValidatePattern(pat) {
			return nil, &errors.ValidationError{Field: "Patterns", Value: pat, Message: "invalid pattern"}
		}
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.WrapIO("resolve", cfg.Dir, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapIO("watch", dir, err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, errors.WrapIO("watch", dir, err)
	}

	return &Trigger{
		cfg:   cfg,
		dir:   dir,
		fsw:   fsw,
		queue: make(chan string, 1),
	}, nil
}

// Dir returns the absolute path of the watched directory.
func (t *Trigger) Dir() string {
	return t.dir
}

// State returns the current state.
func (t *Trigger) State() State {
	return State(t.state.Load())
}

// Runs returns the number of regenerations started.
func (t *Trigger) Runs() uint64 {
	return t.runs.Load()
}

// Failures returns the number of regenerations that returned an error.
func (t *Trigger) Failures() uint64 {
	return t.failures.Load()
}

// Run blocks until ctx is cancelled, dispatching regenerations for accepted
// events. It waits for an in-flight regeneration before returning. Run must
// be called once; a fatal watcher error is returned.
func (t *Trigger) Run(ctx context.Context) error {
	if !t.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}
	defer t.fsw.Close() //nolint:errcheck

	logger := logging.FromContext(ctx)
	logger.Info().Msgf("Watching for file changes in '%s'", t.dir)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t.work(ctx)
	}()
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-t.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed unexpectedly")
			}
			if !t.accepts(evt) {
				continue
			}
			logger.Info().Msgf("File '%s' changed, updating", evt.Name)
			t.enqueue(evt.Name)

		case err, ok := <-t.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}

// accepts reports whether evt is a create, write or rename of a matching
// file.
func (t *Trigger) accepts(evt fsnotify.Event) bool {
	if !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Rename) {
		return false
	}
	if len(t.cfg.Patterns) == 0 {
		return true
	}
	name := filepath.Base(evt.Name)
	for _, pat := range t.cfg.Patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}

// enqueue schedules a run unless one is already pending.
func (t *Trigger) enqueue(path string) {
	select {
	case t.queue <- path:
	default:
	}
}

func (t *Trigger) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-t.queue:
			t.regenerate(ctx, path)
		}
	}
}

func (t *Trigger) regenerate(ctx context.Context, path string) {
	t.state.Store(int32(Regenerating))
	defer t.state.Store(int32(Idle))

	id := t.runs.Add(1)
	runCtx := logging.WithRunID(context.WithoutCancel(ctx), id)
	logger := logging.FromContext(runCtx)

	logger.Debug().Str("file", path).Msg("Regenerating")
	if err := t.invoke(runCtx); err != nil {
		t.failures.Add(1)
		logger.Error().Err(err).Msg("Regeneration failed")
	}
	logger.Info().Msgf("Watching for file changes in '%s'", t.dir)
}

// invoke runs the regeneration callback, converting a panic into an error so
// the worker keeps serving events.
func (t *Trigger) invoke(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRegenerationPanicked, r)
		}
	}()
	return t.cfg.Regenerate(ctx)
}
