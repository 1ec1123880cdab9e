package view

import (
	"encoding/json"
	"fmt"

	"github.com/habiliai/exampleproject/model"
)

// HelloView is the response schema of GET /api/. The message is derived from
// the environment at serialization time, never stored.
type HelloView struct {
	Env model.DeploymentEnvironment `json:"env"`
}

func (v HelloView) Message() string {
	return fmt.Sprintf("Hello from %s", v.Env.Name())
}

func (v HelloView) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Env     model.DeploymentEnvironment `json:"env"`
		Message string                      `json:"message"`
	}{
		Env:     v.Env,
		Message: v.Message(),
	})
}
