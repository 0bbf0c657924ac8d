package reconciler

import (
	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// options holds the resolver settings.
type options struct {
	registry *sources.Registry
	strict   bool
}

func defaultOptions() *options {
	return &options{
		registry: sources.Default(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithRegistry sets the games that synthesized documents get a page for.
func WithRegistry(reg *sources.Registry) Option {
	return func(o *options) error {
		if reg == nil {
			return &errors.ValidationError{
				Field:   "registry",
				Message: "cannot be nil",
			}
		}
		o.registry = reg
		return nil
	}
}

// WithStrict makes Resolve fail when any entity scoped error occurred,
// after every entity has been processed.
func WithStrict(enabled bool) Option {
	return func(o *options) error {
		o.strict = enabled
		return nil
	}
}
