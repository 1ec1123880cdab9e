// Package di is a keyed dependency-injection container. Keys are
// dot-separated string paths; providers are factories invoked once and
// memoized. A container goes through Boot, then Wire, and is read-only
// afterwards: wiring must complete before any concurrent resolution starts.
package di

import (
	"github.com/habiliai/exampleproject/errors"
)

type (
	// Provider produces the value bound to a key. It runs at most once per
	// container; the result is memoized.
	Provider func(c *Container) (any, error)

	// Module registers a group of providers into a container. Wire keeps
	// modules idempotent per container by Name.
	Module interface {
		Name() string
		Register(c *Container) error
	}

	Container struct {
		providers map[string]Provider
		objects   map[string]any
		wired     map[string]struct{}
	}
)

func NewContainer() *Container {
	return &Container{
		providers: make(map[string]Provider),
		objects:   make(map[string]any),
		wired:     make(map[string]struct{}),
	}
}

// Register binds a provider under key. Entries are only ever added, never
// removed or replaced at runtime.
func (c *Container) Register(key string, p Provider) {
	c.providers[key] = p
}

// Set binds an already-constructed value under key.
func (c *Container) Set(key string, value any) {
	c.objects[key] = value
}

// Boot seeds the container from a configuration mapping. Every seeded key is
// resolvable immediately; providers registered by later wiring may read the
// seeded values.
func (c *Container) Boot(values map[string]any) error {
	if values == nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "boot values are nil")
	}

	for key, value := range values {
		if value == nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "boot value for %q is nil", key)
		}
		c.objects[key] = value
	}

	return nil
}

// Wire registers each module once. Wiring the same module name into the same
// container again is a no-op.
func (c *Container) Wire(modules ...Module) error {
	for _, m := range modules {
		if _, ok := c.wired[m.Name()]; ok {
			continue
		}
		if err := m.Register(c); err != nil {
			return errors.Wrapf(err, "failed to wire module %q", m.Name())
		}
		c.wired[m.Name()] = struct{}{}
	}

	return nil
}
