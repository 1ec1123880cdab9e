package cli

import (
	"fmt"

	"github.com/habiliai/exampleproject/core"
	"github.com/habiliai/exampleproject/di"
	"github.com/habiliai/exampleproject/model"
	"github.com/spf13/cobra"
)

// NewExampleCmd returns the `example` command group wired to the given
// container.
func NewExampleCmd(c *di.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Example commands",
	}

	cmd.AddCommand(
		newHelloCmd(c),
	)

	return cmd
}

func newHelloCmd(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Print a greeting for the configured environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := di.Get[model.DeploymentEnvironment](c, core.EnvKey)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "hello from %s\n", env.Name())
			return nil
		},
	}
}
