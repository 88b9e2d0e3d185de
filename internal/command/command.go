// Package command parses the command-bar grammar of the tally TUI. Parsing
// is pure: no I/O, no registry access; the caller applies the result.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tally/internal/habit"
)

// Kind enumerates every command the bar understands.
type Kind int

const (
	AddCount Kind = iota
	AddBit
	Delete
	TrackUp
	TrackDown
	MonthPrev
	MonthNext
	SetView
	Write
	Quit
	Help
)

// Command is one parsed command-bar input.
type Command struct {
	Kind Kind

	// Name is the target habit for add/delete/track commands.
	Name string

	// Goal is the daily goal for AddCount (defaults to 1).
	Goal uint32

	// Mode is the target granularity for SetView.
	Mode habit.ViewMode
}

// ErrEmpty is returned for blank input, which the caller should ignore
// rather than report.
var ErrEmpty = errors.New("empty command")

// Usage is the help text shown for the Help command and for arity errors.
const Usage = `commands:
  add <name> [goal]     add a counter habit (goal defaults to 1)
  add-bit <name>        add a toggle habit
  delete <name>         remove a habit
  track-up <name>       increment today's value
  track-down <name>     decrement today's value
  month-prev            navigate one month back
  month-next            navigate one month forward
  view <day|month|year> switch display granularity
  write                 save habits to disk
  quit                  save and exit
  help                  show this text`

// Parse turns one line of command-bar input into a Command.
func Parse(input string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "add", "a":
		if len(args) < 1 {
			return Command{}, fmt.Errorf("usage: add <name> [goal]")
		}
		cmd := Command{Kind: AddCount, Goal: 1}
		// A trailing number is the goal; anything else stays part of a
		// multi-word name.
		if len(args) > 1 {
			if goal, err := strconv.ParseUint(args[len(args)-1], 10, 32); err == nil {
				cmd.Goal = uint32(goal)
				args = args[:len(args)-1]
			}
		}
		cmd.Name = strings.Join(args, " ")
		return cmd, nil

	case "add-bit", "ab":
		if len(args) < 1 {
			return Command{}, fmt.Errorf("usage: add-bit <name>")
		}
		return Command{Kind: AddBit, Name: strings.Join(args, " ")}, nil

	case "delete", "d":
		if len(args) < 1 {
			return Command{}, fmt.Errorf("usage: delete <name>")
		}
		return Command{Kind: Delete, Name: strings.Join(args, " ")}, nil

	case "track-up", "tu":
		if len(args) < 1 {
			return Command{}, fmt.Errorf("usage: track-up <name>")
		}
		return Command{Kind: TrackUp, Name: strings.Join(args, " ")}, nil

	case "track-down", "td":
		if len(args) < 1 {
			return Command{}, fmt.Errorf("usage: track-down <name>")
		}
		return Command{Kind: TrackDown, Name: strings.Join(args, " ")}, nil

	case "month-prev", "mprev":
		return Command{Kind: MonthPrev}, nil

	case "month-next", "mnext":
		return Command{Kind: MonthNext}, nil

	case "view", "v":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: view <day|month|year>")
		}
		mode, err := habit.ParseViewMode(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: SetView, Mode: mode}, nil

	case "write", "w":
		return Command{Kind: Write}, nil

	case "quit", "q":
		return Command{Kind: Quit}, nil

	case "help", "h", "?":
		return Command{Kind: Help}, nil

	default:
		return Command{}, fmt.Errorf("unknown command %q", verb)
	}
}
