// Package main is the entry point for the tasktab CLI.
package main

import (
	"fmt"
	"os"

	"github.com/okanos/tasktab/internal/app"
	"github.com/okanos/tasktab/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration is merged from the global config directory and the
	// working directory's local file.
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer func() {
		_ = container.Close()
	}()

	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
