package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"pkt.systems/beeper"
)

type themeRow struct {
	name   string
	source string
	style  beeper.Style
}

func newThemesCmd(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes with a preview of each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			// Previews always go to stdout, whatever --output says.
			b, closer, err := setup(cmd, logger, out, beeper.WithEnvOverride("OUTPUT", "default"))
			if err != nil {
				return err
			}
			defer closer.Close()
			defer beeper.Destroy()

			rows := themeRows(b)
			nameWidth, sourceWidth := runewidth.StringWidth("NAME"), runewidth.StringWidth("SOURCE")
			for _, row := range rows {
				nameWidth = max(nameWidth, runewidth.StringWidth(row.name))
				sourceWidth = max(sourceWidth, runewidth.StringWidth(row.source))
			}
			fmt.Fprintf(out, "%s  %s  PREVIEW\n", runewidth.FillRight("NAME", nameWidth), runewidth.FillRight("SOURCE", sourceWidth))
			for _, row := range rows {
				preview := row.style
				preview.Callback = nil
				preview.HideOrigin = true
				preview.NoNewline = false
				if err := b.SetStyle(row.name, preview); err != nil {
					return fmt.Errorf("theme %q: %w", row.name, err)
				}
				fmt.Fprintf(out, "%s  %s  ", runewidth.FillRight(row.name, nameWidth), runewidth.FillRight(row.source, sourceWidth))
				if err := beeper.Emit(b, "", 0, row.name, "the quick brown fox"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// themeRows lists custom themes first, then the built-in themes they do not
// shadow, which is the order Emit resolves names in.
func themeRows(b *beeper.Beeper) []themeRow {
	custom := b.Themes()
	rows := make([]themeRow, 0, len(custom)+len(beeper.BuiltinThemes()))
	seen := make(map[string]bool, len(custom))
	for _, t := range custom {
		rows = append(rows, themeRow{name: t.Name, source: "file", style: t.Style})
		seen[t.Name] = true
	}
	for _, t := range beeper.BuiltinThemes() {
		if seen[t.Name] {
			continue
		}
		rows = append(rows, themeRow{name: t.Name, source: "built-in", style: t.Style})
	}
	return rows
}
