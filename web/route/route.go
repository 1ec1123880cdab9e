package route

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/habiliai/exampleproject/core"
	"github.com/habiliai/exampleproject/di"
	"github.com/habiliai/exampleproject/internal/mylog"
	"github.com/habiliai/exampleproject/model"
	"github.com/habiliai/exampleproject/web/view"
)

// Mount attaches the /api routes to the router.
func Mount(router *mux.Router, c *di.Container) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", index(c)).Methods(http.MethodGet)
}

func index(c *di.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env, err := di.Get[model.DeploymentEnvironment](c, core.EnvKey)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view.HelloView{Env: env}); err != nil {
			logger := di.MustGet[*mylog.Logger](c, core.LoggerKey)
			logger.Warn("failed to write response", mylog.Err(err))
		}
	}
}
