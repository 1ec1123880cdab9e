package model

import (
	"encoding/json"

	"github.com/habiliai/exampleproject/errors"
)

// DeploymentEnvironment identifies the runtime context. It is selected once
// at boot and never changes afterwards.
type DeploymentEnvironment string

const (
	EnvLocal      DeploymentEnvironment = "Local"
	EnvStaging    DeploymentEnvironment = "Staging"
	EnvProduction DeploymentEnvironment = "Production"
)

func Environments() []DeploymentEnvironment {
	return []DeploymentEnvironment{EnvLocal, EnvStaging, EnvProduction}
}

func (e DeploymentEnvironment) Name() string {
	return string(e)
}

func (e DeploymentEnvironment) Valid() bool {
	switch e {
	case EnvLocal, EnvStaging, EnvProduction:
		return true
	}
	return false
}

func ParseDeploymentEnvironment(s string) (DeploymentEnvironment, error) {
	env := DeploymentEnvironment(s)
	if !env.Valid() {
		return "", errors.Wrapf(errors.ErrInvalidConfig, "unknown deployment environment %q", s)
	}

	return env, nil
}

func (e *DeploymentEnvironment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}

	env, err := ParseDeploymentEnvironment(s)
	if err != nil {
		return err
	}

	*e = env
	return nil
}
