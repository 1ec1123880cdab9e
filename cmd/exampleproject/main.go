package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd, err := newCmd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
