package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/habiliai/exampleproject/config"
	"github.com/habiliai/exampleproject/core"
	"github.com/habiliai/exampleproject/di"
	"github.com/habiliai/exampleproject/errors"
	"github.com/habiliai/exampleproject/internal/mylog"
	"github.com/habiliai/exampleproject/web"
	"github.com/mokiat/gog"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the example web application",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, c, err := web.CreateAppWithContainer()
			if err != nil {
				return err
			}

			cfg := di.MustGet[config.ExampleWebSettings](c, core.ExampleWebKey)
			logger := di.MustGet[*mylog.Logger](c, core.LoggerKey)

			logger.Debug("container wired", "modules", gog.Map(core.Modules(), func(m di.Module) string {
				return m.Name()
			}))

			onSig := make(chan os.Signal, 3)
			defer close(onSig)
			signal.Notify(onSig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)

			server := http.Server{
				Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
				Handler: app,
			}

			go func() {
				<-onSig
				if err := server.Shutdown(cmd.Context()); err != nil {
					logger.Error("failed to shutdown server", mylog.Err(err))
				}
			}()

			logger.Info("Starting server", "host", cfg.Host, "port", cfg.Port)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
