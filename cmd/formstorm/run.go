package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/dshills/formstorm/internal/editor"
	"github.com/dshills/formstorm/internal/element"
)

func newRunCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run <script.lua>",
		Short: "Run a script and print the resulting layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.RunFile(cmd.Context(), args[0]); err != nil {
				return err
			}

			st := a.Store().State()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			writeLayers(cmd.OutOrStdout(), st)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full editor state as JSON")
	return cmd
}

// writeLayers prints each step's elements as aligned columns. Widths are
// measured in terminal cells so wide and combining characters line up.
func writeLayers(w io.Writer, st editor.State) {
	for i, step := range st.Steps {
		marker := " "
		if i == st.CurrentStepIndex {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d. %s\n", marker, i+1, step.Name)

		var rows []element.Element
		for _, id := range step.Elements {
			if el, ok := st.Elements[id]; ok {
				rows = append(rows, el)
			}
		}
		if len(rows) == 0 {
			fmt.Fprintln(w, "     (empty)")
			continue
		}

		nameWidth := 0
		for _, el := range rows {
			nameWidth = max(nameWidth, uniseg.StringWidth(el.Name))
		}
		for _, el := range rows {
			flags := ""
			if !el.IsVisible() {
				flags += " hidden"
			}
			if el.Required {
				flags += " required"
			}
			fmt.Fprintf(w, "     %s  %-13s %4.0f,%-4.0f %4.0fx%-4.0f%s\n",
				pad(el.Name, nameWidth), el.Type,
				el.Position.X, el.Position.Y, el.Size.Width, el.Size.Height, flags)
		}
	}

	if orphans := orphaned(st); len(orphans) > 0 {
		fmt.Fprintf(w, "  unassigned: %s\n", strings.Join(orphans, ", "))
	}
}

// orphaned returns names of elements no step lists, in global order.
func orphaned(st editor.State) []string {
	onPage := make(map[string]bool)
	for _, step := range st.Steps {
		for _, id := range step.Elements {
			onPage[id] = true
		}
	}
	var out []string
	for _, id := range st.ElementOrder {
		if !onPage[id] {
			out = append(out, st.Elements[id].Name)
		}
	}
	return out
}

// pad right-pads s with spaces to width terminal cells.
func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
