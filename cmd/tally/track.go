package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tally/internal/habit"
)

var (
	trackDown bool
	trackDate string
)

// trackCmd applies one increment/decrement from the command line, so cron
// jobs and shell aliases can track without the TUI.
var trackCmd = &cobra.Command{
	Use:   "track <name>",
	Short: "Increment (or decrement) a habit for a date",
	Long: `Applies a single track event to the named habit and saves.

Examples:
  tally track Pushups
  tally track --down Pushups
  tally track --date 2024-01-15 Meditate`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := setup()
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		t, ok := reg.Get(name)
		if !ok {
			return fmt.Errorf("no habit named %q", name)
		}

		date := habit.Today()
		if trackDate != "" {
			if date, err = habit.ParseDate(trackDate); err != nil {
				return err
			}
		}

		event := habit.Increment
		if trackDown {
			event = habit.Decrement
		}
		t.Modify(date, event)

		if err := reg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %d remaining\n", name, date, t.Remaining(date))
		return nil
	},
}

func init() {
	trackCmd.Flags().BoolVar(&trackDown, "down", false, "decrement instead of increment")
	trackCmd.Flags().StringVar(&trackDate, "date", "", "date to track (YYYY-MM-DD, default today)")
}
