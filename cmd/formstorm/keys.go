package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the active keyboard shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := a.Keymap().MarshalJSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			for _, b := range a.Keymap().Bindings() {
				when := ""
				if b.When != "" {
					when = "  when " + b.When
				}
				fmt.Fprintf(out, "%-16s %-22s %s%s\n", b.Keys, b.Action, b.Description, when)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print bindings in keymap file format")
	return cmd
}
