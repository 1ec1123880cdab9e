package config

import (
	"github.com/habiliai/exampleproject/model"
)

type LogConfig struct {
	LogLevel   string `env:"LOG_LEVEL"`
	LogHandler string `env:"LOG_HANDLER"`
}

// FrontendSettings locates the frontend dev server the local environment
// allows cross-origin calls from.
type FrontendSettings struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// ExampleWebSettings is the configuration subtree mounted at
// "config.web.example". Frontend is only populated for the local environment.
type ExampleWebSettings struct {
	Host     string            `json:"host" yaml:"host"`
	Port     int               `json:"port" yaml:"port"`
	Frontend *FrontendSettings `json:"frontend,omitempty" yaml:"frontend,omitempty"`
}

type WebSettings struct {
	Example ExampleWebSettings `json:"example" yaml:"example"`
}

// Tree renders the web settings as the configuration subtree seeded under
// the "config" container key.
func (w WebSettings) Tree() map[string]any {
	return map[string]any{
		"web": map[string]any{
			"example": w.Example,
		},
	}
}

// Settings carries the process-level configuration, read-only after load.
type Settings struct {
	Environment string
	Root        string
	Web         WebSettings
}

func ResolveLogConfig(testing bool) (*LogConfig, error) {
	conf := &LogConfig{
		LogLevel:   "debug",
		LogHandler: "default",
	}

	return conf, resolveConfig(conf, testing)
}

// ResolveSettings loads the process settings from defaults, dotenv files and
// the environment. Frontend settings are resolved only when the selected
// environment is Local.
func ResolveSettings(testing bool) (*Settings, error) {
	base := &struct {
		Environment string `env:"ENVIRONMENT"`
		Root        string `env:"ROOT_PATH"`
		Host        string `env:"HOST"`
		Port        int    `env:"PORT"`
	}{
		Environment: model.EnvLocal.Name(),
		Root:        ".",
		Host:        "0.0.0.0",
		Port:        8080,
	}
	if err := resolveConfig(base, testing); err != nil {
		return nil, err
	}

	settings := &Settings{
		Environment: base.Environment,
		Root:        base.Root,
		Web: WebSettings{
			Example: ExampleWebSettings{
				Host: base.Host,
				Port: base.Port,
			},
		},
	}

	if settings.Environment == model.EnvLocal.Name() {
		frontend, err := resolveFrontendSettings(testing)
		if err != nil {
			return nil, err
		}
		settings.Web.Example.Frontend = frontend
	}

	return settings, nil
}

func resolveFrontendSettings(testing bool) (*FrontendSettings, error) {
	conf := &struct {
		Host string `env:"FRONTEND_HOST"`
		Port int    `env:"FRONTEND_PORT"`
	}{
		Host: "127.0.0.1",
		Port: 3000,
	}
	if err := resolveConfig(conf, testing); err != nil {
		return nil, err
	}

	return &FrontendSettings{
		Host: conf.Host,
		Port: conf.Port,
	}, nil
}
