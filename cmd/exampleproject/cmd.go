package main

import (
	"github.com/habiliai/exampleproject/cli"
	"github.com/habiliai/exampleproject/core"
	"github.com/spf13/cobra"
)

func newCmd() (*cobra.Command, error) {
	c, err := core.NewContainer()
	if err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:          "exampleproject",
		Short:        "Example project wired through a DI container",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		cli.NewExampleCmd(c),
		newServeCmd(),
	)

	return cmd, nil
}
