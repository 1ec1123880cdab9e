package core

import (
	"encoding/json"

	"github.com/habiliai/exampleproject/config"
	"github.com/habiliai/exampleproject/errors"
	"github.com/habiliai/exampleproject/model"
)

// BootEnvVar carries a JSON-encoded BootConfiguration into test-mode boots.
// When unset, the process-default wiring applies and no JSON is parsed.
const BootEnvVar = "__Test_BOOT"

type BootWebConfig struct {
	Example config.ExampleWebSettings `json:"example"`
}

type BootConfig struct {
	Web BootWebConfig `json:"web"`
}

// BootConfiguration is decoded once per test-mode process start, consumed
// immediately and never mutated afterwards.
type BootConfiguration struct {
	Env    model.DeploymentEnvironment `json:"env"`
	Root   string                      `json:"root"`
	Config BootConfig                  `json:"config"`
}

// DecodeBootConfiguration validates the boot payload before any application
// object is constructed. Failures are fatal at startup.
func DecodeBootConfiguration(data []byte) (*BootConfiguration, error) {
	var bc BootConfiguration
	if err := json.Unmarshal(data, &bc); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidBoot, "failed to decode boot configuration: %v", err)
	}

	if !bc.Env.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidBoot, "missing deployment environment")
	}
	if bc.Root == "" {
		return nil, errors.Wrapf(errors.ErrInvalidBoot, "missing root path")
	}

	return &bc, nil
}

// Values renders the boot configuration as the container boot mapping.
func (bc *BootConfiguration) Values() map[string]any {
	return map[string]any{
		EnvKey:  bc.Env,
		RootKey: bc.Root,
		ConfigKey: map[string]any{
			"web": map[string]any{
				"example": bc.Config.Web.Example,
			},
		},
	}
}
