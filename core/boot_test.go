package core_test

import (
	"encoding/json"
	"testing"

	"github.com/habiliai/exampleproject/config"
	"github.com/habiliai/exampleproject/core"
	"github.com/habiliai/exampleproject/errors"
	"github.com/habiliai/exampleproject/model"
	"github.com/stretchr/testify/require"
)

func newBootConfiguration(root string) *core.BootConfiguration {
	return &core.BootConfiguration{
		Env:  model.EnvLocal,
		Root: root,
		Config: core.BootConfig{
			Web: core.BootWebConfig{
				Example: config.ExampleWebSettings{
					Host: "127.0.0.1",
					Port: 18080,
					Frontend: &config.FrontendSettings{
						Host: "127.0.0.1",
						Port: 3000,
					},
				},
			},
		},
	}
}

func TestBootConfigurationRoundTrip(t *testing.T) {
	bc := newBootConfiguration("/srv/example")

	data, err := json.Marshal(bc)
	require.NoError(t, err)

	decoded, err := core.DecodeBootConfiguration(data)
	require.NoError(t, err)
	require.Equal(t, bc, decoded)
}

func TestDecodeBootConfigurationMalformed(t *testing.T) {
	_, err := core.DecodeBootConfiguration([]byte("{not json"))
	require.ErrorIs(t, err, errors.ErrInvalidBoot)
}

func TestDecodeBootConfigurationMissingFields(t *testing.T) {
	_, err := core.DecodeBootConfiguration([]byte(`{"root":"/srv/example"}`))
	require.ErrorIs(t, err, errors.ErrInvalidBoot)

	_, err = core.DecodeBootConfiguration([]byte(`{"env":"Local"}`))
	require.ErrorIs(t, err, errors.ErrInvalidBoot)

	_, err = core.DecodeBootConfiguration([]byte(`{"env":"Moon","root":"/srv/example"}`))
	require.ErrorIs(t, err, errors.ErrInvalidBoot)
}

func TestBootConfigurationValues(t *testing.T) {
	bc := newBootConfiguration("/srv/example")

	values := bc.Values()
	require.Equal(t, model.EnvLocal, values[core.EnvKey])
	require.Equal(t, "/srv/example", values[core.RootKey])

	tree, ok := values[core.ConfigKey].(map[string]any)
	require.True(t, ok)
	web, ok := tree["web"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, bc.Config.Web.Example, web["example"])
}
