package main

import (
	"fmt"
	"os"

	"tsb/internal/cli"
	"tsb/internal/cli/commands"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:          "tsb",
		Short:        "Test session bootstrap",
		Long:         `Prepare the report directory tree a test session writes into. Run "tsb init" before tests in CI, or call session.Main from TestMain.`,
		Version:      version,
		SilenceUsage: true,
	}

	var flags cli.Flags
	commands.NewCommands(&flags, os.Stdout).Register(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
