package main

import (
	"context"
	"fmt"
	"os"

	"clovasummary/internal/cli"
	"clovasummary/internal/config"
)

func main() {
	if err := cli.Run(context.Background(), os.Args[1:], config.EnvSettings{}, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
