package core

import (
	"time"

	"github.com/habiliai/exampleproject/config"
	"github.com/habiliai/exampleproject/di"
	"github.com/habiliai/exampleproject/internal/mylog"
)

// Clock produces the current time for request-scoped measurements.
type Clock func() time.Time

// LoggingProvider binds the process logger under "logger".
type LoggingProvider struct{}

func (LoggingProvider) Name() string { return "core.logging" }

func (LoggingProvider) Register(c *di.Container) error {
	c.Register(LoggerKey, func(c *di.Container) (any, error) {
		conf, err := config.ResolveLogConfig(false)
		if err != nil {
			return nil, err
		}

		return mylog.NewLogger(conf.LogLevel, conf.LogHandler), nil
	})

	return nil
}

// TimestampProvider binds a UTC clock under "clock".
type TimestampProvider struct{}

func (TimestampProvider) Name() string { return "core.timestamp" }

func (TimestampProvider) Register(c *di.Container) error {
	c.Register(ClockKey, func(c *di.Container) (any, error) {
		return Clock(func() time.Time {
			return time.Now().UTC()
		}), nil
	})

	return nil
}

// SecretsProvider binds secrets loaded from the root path under "secrets".
type SecretsProvider struct{}

func (SecretsProvider) Name() string { return "core.secrets" }

func (SecretsProvider) Register(c *di.Container) error {
	c.Register(SecretsKey, func(c *di.Container) (any, error) {
		root, err := di.Get[string](c, RootKey)
		if err != nil {
			return nil, err
		}

		return config.LoadSecrets(root)
	})

	return nil
}
