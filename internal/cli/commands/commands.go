package commands

import (
	"io"

	"tsb/internal/cli"
	"tsb/internal/config"
	"tsb/internal/session"
	"tsb/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Init  *InitCommand
	Paths *PathsCommand

	flags *cli.Flags
	out   io.Writer
	cfg   *config.Config
}

// NewCommands creates all commands. out receives console output (stdout when nil).
func NewCommands(flags *cli.Flags, out io.Writer) *Commands {
	c := &Commands{flags: flags, out: out}
	c.Init = &InitCommand{deps: c}
	c.Paths = &PathsCommand{deps: c}
	return c
}

// load resolves the config from the parsed flags
func (c *Commands) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.flags.ToConfigFlags())
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *Commands) console() *ui.Console {
	return ui.NewConsole(c.out, c.cfg.NoColor)
}

func (c *Commands) session() (*session.Session, error) {
	return session.New(c.cfg, session.WithConsole(c.console()))
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command) {
	c.flags.Bind(rootCmd.PersistentFlags())

	initCmd := &cobra.Command{
		Use:     "init",
		Short:   "Create the report directories",
		Long:    "Run session start: create the reports root and logs directory if they are missing. Existing directories are left untouched.",
		Args:    cobra.NoArgs,
		PreRunE: c.load,
		RunE:    c.Init.Execute,
	}
	rootCmd.AddCommand(initCmd)

	pathsCmd := &cobra.Command{
		Use:     "paths",
		Short:   "Show the report directory layout",
		Long:    "Print the resolved reports root and logs directory and whether each exists. Nothing is created.",
		Args:    cobra.NoArgs,
		PreRunE: c.load,
		RunE:    c.Paths.Execute,
	}
	rootCmd.AddCommand(pathsCmd)
}
