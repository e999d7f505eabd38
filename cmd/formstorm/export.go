package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/formstorm/internal/export"
)

func newExportCmd(c *cli) *cobra.Command {
	var (
		format       string
		output       string
		noStyles     bool
		noValidation bool
	)

	formats := make([]string, 0, len(export.Formats))
	for _, f := range export.Formats {
		formats = append(formats, string(f))
	}

	cmd := &cobra.Command{
		Use:   "export <script.lua>",
		Short: "Run a script and export the form it builds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.RunFile(cmd.Context(), args[0]); err != nil {
				return err
			}

			opts := export.Options{
				IncludeStyles:     !noStyles,
				IncludeValidation: !noValidation,
			}
			out, err := a.Export(f, opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}
			if err := os.WriteFile(output, []byte(out+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			a.Logger().Info("wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSONSchema), "Output format ("+strings.Join(formats, "|")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&noStyles, "no-styles", false, "HTML: omit element styles")
	cmd.Flags().BoolVar(&noValidation, "no-validation", false, "HTML: omit the required-field script")
	return cmd
}
