package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tally/cmd/tally/ui"
	"tally/internal/habit"
)

// listCmd prints the habits and today's progress without entering the TUI,
// for shells and status bars.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print habits and today's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, reg, err := setup()
		if err != nil {
			return err
		}

		today := habit.Today()
		table := ui.NewTable("NAME", "KIND", "GOAL", "TODAY", "LEFT")
		for _, t := range reg.All() {
			table.AddRow(
				t.Name(),
				t.Kind(),
				strconv.FormatUint(uint64(t.Goal()), 10),
				todayCell(t, today, cfg.Look.TrueChr, cfg.Look.FalseChr),
				strconv.FormatUint(uint64(t.Remaining(today)), 10),
			)
		}

		fmt.Fprint(cmd.OutOrStdout(), table.Render(ui.NewStyles(cfg.Colors)))
		return nil
	},
}

// todayCell summarizes today's entry for one habit: the raw value for
// counters, the configured glyph for toggles, "-" when untracked.
func todayCell(t habit.Tracker, today habit.Date, trueChr, falseChr string) string {
	if !t.HasEntry(today) {
		return "-"
	}
	switch h := t.(type) {
	case *habit.Count:
		v, _ := h.GetByDate(today)
		return strconv.FormatUint(uint64(v), 10)
	case *habit.Bit:
		v, _ := h.GetByDate(today)
		return v.Format(trueChr, falseChr)
	default:
		return "?"
	}
}
