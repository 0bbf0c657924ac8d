package pagetools

import (
	"context"

	"github.com/s2wiki/pagetools/internal/watch"
	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/overrides"
)

// Watch regenerates every time an override file is created, modified or
// renamed, until ctx is cancelled. Failed runs are logged and reported to
// the OnRegenerated hooks; watching continues.
func (g *generator) Watch(ctx context.Context) error {
	dir := g.config.path(g.config.overridesDir)
	if err := g.config.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	trigger, err := watch.New(watch.Config{
		Dir:      dir,
		Patterns: overrides.Patterns,
		Regenerate: func(ctx context.Context) error {
			result, err := g.Generate(ctx)
			g.hooks.regenerated(result, err)
			return err
		},
	})
	if err != nil {
		return err
	}
	return trigger.Run(ctx)
}
