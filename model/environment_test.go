package model_test

import (
	"encoding/json"
	"testing"

	"github.com/habiliai/exampleproject/errors"
	"github.com/habiliai/exampleproject/model"
	"github.com/stretchr/testify/require"
)

func TestParseDeploymentEnvironment(t *testing.T) {
	for _, env := range model.Environments() {
		got, err := model.ParseDeploymentEnvironment(env.Name())
		require.NoError(t, err)
		require.Equal(t, env, got)
	}

	_, err := model.ParseDeploymentEnvironment("Moon")
	require.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestUnmarshalRejectsUnknown(t *testing.T) {
	var env model.DeploymentEnvironment
	require.NoError(t, json.Unmarshal([]byte(`"Staging"`), &env))
	require.Equal(t, model.EnvStaging, env)

	require.Error(t, json.Unmarshal([]byte(`"Moon"`), &env))
	require.Error(t, json.Unmarshal([]byte(`42`), &env))
}
