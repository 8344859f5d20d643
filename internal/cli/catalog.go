package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/authsmith/authsmith/internal/catalog"
)

var (
	capStyle    = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the available capabilities and presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Capabilities:")
		for _, c := range catalog.All {
			line := "  " + capStyle.Render(string(c))
			var notes []string
			if catalog.RequiresEmail(c) {
				notes = append(notes, "sends email")
			}
			if cols := catalog.Columns(c); len(cols) > 0 {
				notes = append(notes, fmt.Sprintf("%d schema column(s)", len(cols)))
			}
			if len(notes) > 0 {
				line += " " + detailStyle.Render("("+strings.Join(notes, ", ")+")")
			}
			fmt.Fprintln(out, line)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Presets:")
		for _, name := range catalog.PresetNames() {
			exp, _ := catalog.Preset(name)
			names := make([]string, len(exp))
			for i, c := range exp {
				names[i] = string(c)
			}
			fmt.Fprintf(out, "  %s %s\n",
				capStyle.Render(name),
				detailStyle.Render("= "+strings.Join(names, ", ")))
		}
		return nil
	},
}
