package mytesting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/habiliai/exampleproject/config"
	"github.com/habiliai/exampleproject/core"
	"github.com/habiliai/exampleproject/di"
	"github.com/habiliai/exampleproject/model"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
)

// Suite is the base test suite: a context plus a container booted for the
// local environment, ready for per-test overrides via Set.
type Suite struct {
	suite.Suite
	context.Context

	Cancel    context.CancelFunc
	Container *di.Container
}

func (s *Suite) SetupTest() {
	if projectRoot, err := findProjectRoot(); err == nil {
		envFile := filepath.Join(projectRoot, ".env")
		if _, err := os.Stat(envFile); !os.IsNotExist(err) {
			s.Require().NoError(godotenv.Load(envFile))
		}
	}

	s.Context, s.Cancel = context.WithCancel(context.TODO())

	c, err := core.NewTestContainer(s.BootConfiguration())
	s.Require().NoError(err)
	s.Container = c
}

func (s *Suite) TearDownTest() {
	s.Cancel()
}

// BootConfiguration is the default test boot payload. Override fields before
// calling NewTestContainer again for non-local scenarios.
func (s *Suite) BootConfiguration() *core.BootConfiguration {
	return &core.BootConfiguration{
		Env:  model.EnvLocal,
		Root: s.T().TempDir(),
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

// findProjectRoot searches for the go.mod file starting from this file's
// location.
func findProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to get caller information")
	}

	dir := filepath.Dir(filename)

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("go.mod not found in any parent directory")
}
