package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/habiliai/exampleproject/config"
	"github.com/stretchr/testify/require"
)

func TestResolveSettingsDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "ROOT_PATH", "FRONTEND_HOST", "FRONTEND_PORT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	settings, err := config.ResolveSettings(false)
	require.NoError(t, err)

	require.Equal(t, "Local", settings.Environment)
	require.NotNil(t, settings.Web.Example.Frontend)
}

func TestResolveSettingsFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "Local")
	t.Setenv("ROOT_PATH", "/srv/example")
	t.Setenv("FRONTEND_HOST", "front.local")
	t.Setenv("FRONTEND_PORT", "5173")

	settings, err := config.ResolveSettings(false)
	require.NoError(t, err)

	require.Equal(t, "/srv/example", settings.Root)
	require.NotNil(t, settings.Web.Example.Frontend)
	require.Equal(t, "front.local", settings.Web.Example.Frontend.Host)
	require.Equal(t, 5173, settings.Web.Example.Frontend.Port)
}

func TestResolveSettingsNonLocalHasNoFrontend(t *testing.T) {
	t.Setenv("ENVIRONMENT", "Production")

	settings, err := config.ResolveSettings(false)
	require.NoError(t, err)

	require.Equal(t, "Production", settings.Environment)
	require.Nil(t, settings.Web.Example.Frontend)
}

func TestWebSettingsTree(t *testing.T) {
	w := config.WebSettings{
		Example: config.ExampleWebSettings{Host: "0.0.0.0", Port: 8080},
	}

	tree := w.Tree()
	web, ok := tree["web"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, w.Example, web["example"])
}

func TestLoadSecrets(t *testing.T) {
	root := t.TempDir()

	secrets, err := config.LoadSecrets(root)
	require.NoError(t, err)
	require.Empty(t, secrets.SessionKey)

	require.NoError(t, os.WriteFile(
		filepath.Join(root, "secrets.yaml"),
		[]byte("sessionKey: s3cret\napiToken: t0ken\n"),
		0o600,
	))

	secrets, err = config.LoadSecrets(root)
	require.NoError(t, err)
	require.Equal(t, "s3cret", secrets.SessionKey)
	require.Equal(t, "t0ken", secrets.APIToken)
}

func TestLoadSecretsMalformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "secrets.yaml"),
		[]byte("sessionKey: [unclosed"),
		0o600,
	))

	_, err := config.LoadSecrets(root)
	require.Error(t, err)
}
