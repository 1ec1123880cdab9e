package web

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/habiliai/exampleproject/config"
	"github.com/habiliai/exampleproject/core"
	"github.com/habiliai/exampleproject/di"
	"github.com/habiliai/exampleproject/errors"
	"github.com/habiliai/exampleproject/internal/mylog"
	"github.com/habiliai/exampleproject/model"
	"github.com/habiliai/exampleproject/web/route"
)

// NewApp builds the HTTP application from an already wired container.
// Cross-origin middleware is attached only for the local environment, and
// frontend settings must be present there.
func NewApp(c *di.Container) (http.Handler, error) {
	env, err := di.Get[model.DeploymentEnvironment](c, core.EnvKey)
	if err != nil {
		return nil, err
	}
	cfg, err := di.Get[config.ExampleWebSettings](c, core.ExampleWebKey)
	if err != nil {
		return nil, err
	}
	root, err := di.Get[string](c, core.RootKey)
	if err != nil {
		return nil, err
	}
	logger, err := di.Get[*mylog.Logger](c, core.LoggerKey)
	if err != nil {
		return nil, err
	}
	clock, err := di.Get[core.Clock](c, core.ClockKey)
	if err != nil {
		return nil, err
	}

	logger.Debug("building web application", "env", env.Name(), "root", root)

	router := mux.NewRouter()
	route.Mount(router, c)

	var handler http.Handler = router
	handler = newAccessLogMiddleware(logger, clock)(handler)
	handler = newRecoveryMiddleware(logger)(handler)

	if env == model.EnvLocal {
		if cfg.Frontend == nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "frontend settings are required for the local environment")
		}
		handler = handlers.CORS(
			handlers.AllowedOrigins(AllowedOrigins(cfg.Frontend)),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Accept", "Origin", "X-Requested-With"}),
			handlers.AllowCredentials(),
		)(handler)
	}

	return handler, nil
}

// AllowedOrigins lists the origins the local frontend may call from.
func AllowedOrigins(frontend *config.FrontendSettings) []string {
	return []string{
		fmt.Sprintf("http://%s:%d", frontend.Host, frontend.Port),
		fmt.Sprintf("http://localhost:%d", frontend.Port),
	}
}

// CreateApp builds the application. With BootEnvVar set, the boot payload
// drives explicit test-container construction; otherwise the process-default
// wiring applies.
func CreateApp() (http.Handler, error) {
	app, _, err := CreateAppWithContainer()
	return app, err
}

// CreateAppWithContainer is CreateApp, also exposing the container the app
// was wired from.
func CreateAppWithContainer() (http.Handler, *di.Container, error) {
	c, err := newBootContainer()
	if err != nil {
		return nil, nil, err
	}

	app, err := NewApp(c)
	if err != nil {
		return nil, nil, err
	}

	return app, c, nil
}

func newBootContainer() (*di.Container, error) {
	bootVars := os.Getenv(core.BootEnvVar)
	if bootVars == "" {
		return core.NewContainer()
	}

	bc, err := core.DecodeBootConfiguration([]byte(bootVars))
	if err != nil {
		return nil, err
	}

	return core.NewTestContainer(bc)
}
