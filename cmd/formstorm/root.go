package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/formstorm/internal/app"
)

// cli holds the global flags shared by every command.
type cli struct {
	ConfigPath string
	LogLevel   string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:          "formstorm",
		Short:        "Headless form designer driven by Lua scripts",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Build a form and list its layers
  formstorm run signup.lua

  # Export the form a script builds
  formstorm export signup.lua --format html -o signup.html

  # Find a component
  formstorm palette mail
`),
	}

	cmd.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "Path to config file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&c.LogLevel, "log-level", "", "Log level (debug|info|warn|error|none); overrides config")

	cmd.AddCommand(newRunCmd(c))
	cmd.AddCommand(newExportCmd(c))
	cmd.AddCommand(newPaletteCmd(c))
	cmd.AddCommand(newKeysCmd(c))

	return cmd
}

// open bootstraps an application whose output follows cmd's writers.
func (c *cli) open(cmd *cobra.Command) (*app.Application, error) {
	return app.New(app.Options{
		ConfigPath:   c.ConfigPath,
		LogLevel:     c.LogLevel,
		LogOutput:    cmd.ErrOrStderr(),
		ScriptOutput: cmd.OutOrStdout(),
	})
}
