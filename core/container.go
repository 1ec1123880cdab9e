package core

import (
	"github.com/habiliai/exampleproject/config"
	"github.com/habiliai/exampleproject/di"
	"github.com/habiliai/exampleproject/errors"
	"github.com/habiliai/exampleproject/model"
)

// Container keys consumed by the CLI and web layers.
const (
	EnvKey        = "env"
	RootKey       = "root"
	ConfigKey     = "config"
	ExampleWebKey = "config.web.example"
	LoggerKey     = "logger"
	ClockKey      = "clock"
	SecretsKey    = "secrets"
)

// Modules lists the cross-cutting providers every container gets wired with.
func Modules() []di.Module {
	return []di.Module{
		LoggingProvider{},
		TimestampProvider{},
		SecretsProvider{},
	}
}

// NewContainer builds the process-default container: settings come from the
// process environment and optional dotenv files.
func NewContainer() (*di.Container, error) {
	settings, err := config.ResolveSettings(false)
	if err != nil {
		return nil, err
	}

	env, err := model.ParseDeploymentEnvironment(settings.Environment)
	if err != nil {
		return nil, err
	}

	c := di.NewContainer()
	if err := c.Boot(map[string]any{
		EnvKey:    env,
		RootKey:   settings.Root,
		ConfigKey: settings.Web.Tree(),
	}); err != nil {
		return nil, err
	}
	if err := c.Wire(Modules()...); err != nil {
		return nil, err
	}

	return c, nil
}

// NewTestContainer builds a container from an explicit boot configuration,
// bypassing the process environment entirely.
func NewTestContainer(bc *BootConfiguration) (*di.Container, error) {
	if bc == nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "boot configuration is nil")
	}

	c := di.NewContainer()
	if err := c.Boot(bc.Values()); err != nil {
		return nil, err
	}
	if err := c.Wire(Modules()...); err != nil {
		return nil, err
	}

	return c, nil
}
