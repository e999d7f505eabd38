package main

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

func newPaletteCmd(c *cli) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "palette [query]",
		Short: "List or search the component palette",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			query := strings.Join(args, " ")
			results := a.Palette().Search(query, limit)
			if len(results) == 0 {
				return fmt.Errorf("no component matches %q", query)
			}

			labels := make([]string, len(results))
			width := 0
			for i, r := range results {
				labels[i] = highlight(r.Component.Name, r.Matches)
				width = max(width, uniseg.StringWidth(labels[i]))
			}
			out := cmd.OutOrStdout()
			for i, r := range results {
				size := r.Component.DefaultSize()
				fmt.Fprintf(out, "%s  %-13s %-12s %4.0fx%.0f\n",
					pad(labels[i], width), r.Component.Type, r.Component.Category, size.Width, size.Height)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (0 = all)")
	return cmd
}

// highlight brackets the matched byte offsets of name.
func highlight(name string, matches []int) string {
	if len(matches) == 0 {
		return name
	}
	hit := make(map[int]bool, len(matches))
	for _, m := range matches {
		hit[m] = true
	}
	var b strings.Builder
	for i, r := range name {
		if hit[i] {
			b.WriteByte('[')
			b.WriteRune(r)
			b.WriteByte(']')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
