// Package habit holds the core habit data model: the per-variant tracking
// contract, the Count and Bit concrete kinds, the type-erased Tracker
// interface the registry and UI operate on, and the tagged JSON codec that
// reconstructs concrete kinds from persisted records.
package habit

import "fmt"

// TrackEvent is a single user-initiated change to a habit's value on a date.
type TrackEvent int

const (
	Increment TrackEvent = iota
	Decrement
)

func (e TrackEvent) String() string {
	switch e {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return fmt.Sprintf("TrackEvent(%d)", int(e))
	}
}

// ViewMode selects the display granularity of a habit's history. The zero
// value is Day, which is also the state every habit returns to after a load.
type ViewMode int

const (
	Day ViewMode = iota
	Month
	Year
)

func (m ViewMode) String() string {
	switch m {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

// ParseViewMode maps a command-bar argument to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "day", "d":
		return Day, nil
	case "month", "m":
		return Month, nil
	case "year", "y":
		return Year, nil
	default:
		return Day, fmt.Errorf("unknown view mode %q", s)
	}
}

// Habit is the typed contract every concrete habit kind satisfies, generic
// over the kind's progress value type (uint32 for Count, CustomBool for
// Bit). The non-generic Tracker interface erases T for heterogeneous
// collections; this one exists so each variant's typed surface is checked
// at compile time.
type Habit[T any] interface {
	Name() string
	SetName(name string)

	// SetGoal replaces the goal. Bit's goal is structurally fixed, so its
	// implementation is a no-op in effect, but the call still type-checks
	// against the variant's value type.
	SetGoal(goal T)

	// GetByDate reports the stored value for a date. ok is false when the
	// date was never tracked, which is distinct from a zero/false value.
	GetByDate(date Date) (value T, ok bool)

	// InsertEntry upserts: an existing date key is overwritten
	// unconditionally, an absent one is created. Keys are never removed.
	InsertEntry(date Date, value T)

	ReachedGoal(date Date) bool
	Remaining(date Date) uint32
	Goal() uint32

	// Modify is the sole user-facing mutation path. A first touch on an
	// absent date always stores 1/true regardless of the event kind.
	Modify(date Date, event TrackEvent)

	SetViewMonthOffset(offset uint32)
	ViewMonthOffset() uint32
	SetViewMode(mode ViewMode)
	Mode() ViewMode
}

// viewState is the transient display state each habit carries. It is never
// serialized; every decoded habit starts back at Day view, offset 0.
type viewState struct {
	monthOffset uint32
	mode        ViewMode
}

func (v *viewState) SetViewMonthOffset(offset uint32) { v.monthOffset = offset }
func (v *viewState) ViewMonthOffset() uint32          { return v.monthOffset }
func (v *viewState) SetViewMode(mode ViewMode)        { v.mode = mode }
func (v *viewState) Mode() ViewMode                   { return v.mode }
