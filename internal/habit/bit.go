package habit

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// KindBit is the serialized discriminant for Bit records.
const KindBit = "bit"

// CustomBool is a bool whose display form is a configurable glyph. Storage
// and comparisons stay on the plain bool; only Format is presentation.
type CustomBool bool

// Format centers the glyph for the value in a fixed three-cell field. The
// glyphs are explicit parameters so the value type carries no hidden
// configuration dependency.
func (b CustomBool) Format(trueChr, falseChr string) string {
	chr := falseChr
	if b {
		chr = trueChr
	}
	pad := 3 - utf8.RuneCountInString(chr)
	if pad <= 0 {
		return chr
	}
	left := pad / 2
	return strings.Repeat(" ", left) + chr + strings.Repeat(" ", pad-left)
}

// Bit is a binary habit: done or not done on a given day. Its goal is
// structurally "true"; only Count carries a settable numeric goal.
type Bit struct {
	name  string
	stats map[Date]CustomBool

	viewState
}

var _ Habit[CustomBool] = (*Bit)(nil)
var _ Tracker = (*Bit)(nil)

// NewBit creates a toggle habit with the given name.
func NewBit(name string) *Bit {
	return &Bit{
		name:  name,
		stats: make(map[Date]CustomBool),
	}
}

func (b *Bit) Name() string        { return b.name }
func (b *Bit) SetName(name string) { b.name = name }
func (b *Bit) Kind() string        { return KindBit }

// SetGoal exists to satisfy the typed contract; the goal of a Bit cannot
// actually change.
func (b *Bit) SetGoal(CustomBool) {}

// Goal always reports 1: one "true" day is the whole goal.
func (b *Bit) Goal() uint32 { return 1 }

func (b *Bit) GetByDate(date Date) (CustomBool, bool) {
	v, ok := b.stats[date]
	return v, ok
}

func (b *Bit) InsertEntry(date Date, value CustomBool) {
	b.stats[date] = value
}

func (b *Bit) ReachedGoal(date Date) bool {
	return bool(b.stats[date])
}

func (b *Bit) Remaining(date Date) uint32 {
	if b.stats[date] {
		return 0
	}
	return 1
}

// Modify flips the stored value; the event kind is ignored. A first touch
// stores true.
func (b *Bit) Modify(date Date, _ TrackEvent) {
	if v, ok := b.stats[date]; ok {
		b.stats[date] = !v
		return
	}
	b.InsertEntry(date, true)
}

type bitRecord struct {
	Type  string              `json:"type"`
	Name  string              `json:"name"`
	Stats map[Date]CustomBool `json:"stats"`
	Goal  CustomBool          `json:"goal"`
}

// MarshalJSON encodes the habit with its type discriminant. The goal field
// is kept in the record for format compatibility even though it is fixed.
func (b *Bit) MarshalJSON() ([]byte, error) {
	return json.Marshal(bitRecord{
		Type:  KindBit,
		Name:  b.name,
		Stats: b.stats,
		Goal:  true,
	})
}

// UnmarshalJSON restores name and stats; view state resets to Day/0.
func (b *Bit) UnmarshalJSON(data []byte) error {
	var rec bitRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	b.name = rec.Name
	b.stats = rec.Stats
	if b.stats == nil {
		b.stats = make(map[Date]CustomBool)
	}
	b.viewState = viewState{}
	return nil
}
