package commands

import (
	"github.com/spf13/cobra"
	"tsb/internal/bootstrap"
	"tsb/internal/ui"
)

// PathsCommand handles the paths command
type PathsCommand struct {
	deps *Commands
}

// Execute runs the command
func (pc *PathsCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := pc.deps.cfg
	entries := []bootstrap.DirStatus{
		bootstrap.Inspect("reports", cfg.GetReportsPath()),
		bootstrap.Inspect("logs", cfg.GetLogsPath()),
	}

	ui.NewFormatter(pc.deps.console()).PrintLayout(entries)
	return nil
}
