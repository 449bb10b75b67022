package commands

import (
	"github.com/spf13/cobra"
	"tsb/internal/ui"
)

// InitCommand handles the init command
type InitCommand struct {
	deps *Commands
}

// Execute runs the command
func (ic *InitCommand) Execute(cmd *cobra.Command, args []string) error {
	s, err := ic.deps.session()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.OnSessionStart(); err != nil {
		return err
	}

	ui.NewFormatter(s.Console).PrintReady(s.Config.Directories())
	return nil
}
