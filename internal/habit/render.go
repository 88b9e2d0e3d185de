package habit

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Card dimensions every habit proposes to the layout. A month grid is seven
// 3-cell columns, plus the title and summary lines above it.
const (
	CardWidth  = 21
	CardHeight = 8
)

// RenderContext carries everything a habit needs to draw itself: the
// reference date, the configured glyphs and the styles derived from the
// user's colors. Glyphs are passed explicitly rather than read from ambient
// configuration.
type RenderContext struct {
	Today   Date
	Focused bool

	TrueChr   string
	FalseChr  string
	FutureChr string

	Title    lipgloss.Style
	Reached  lipgloss.Style
	Todo     lipgloss.Style
	Inactive lipgloss.Style
}

// cell renders one day of a habit's history as a fixed-width glyph.
func (rc RenderContext) cell(t Tracker, date Date) string {
	if date.After(rc.Today) || !t.HasEntry(date) {
		return rc.Inactive.Render(pad3(rc.FutureChr))
	}
	if t.ReachedGoal(date) {
		return rc.Reached.Render(pad3(rc.TrueChr))
	}
	return rc.Todo.Render(pad3(rc.FalseChr))
}

func pad3(chr string) string {
	return CustomBool(true).Format(chr, chr)
}

// displayMonth is the month the Month/Year-relative views should show:
// today's month shifted back by the habit's navigation offset.
func displayMonth(t Tracker, today Date) Date {
	return NewDate(today.Year, today.Month, 1).AddMonths(-int(t.ViewMonthOffset()))
}

// drawTitle renders the card's header line: the habit name and today's
// reached marker.
func drawTitle(rc RenderContext, t Tracker) string {
	name := t.Name()
	if len(name) > CardWidth-4 {
		name = name[:CardWidth-4]
	}
	gap := CardWidth - lipgloss.Width(name) - 3
	if gap < 1 {
		gap = 1
	}
	return rc.Title.Render(name) + strings.Repeat(" ", gap) + rc.cell(t, rc.Today)
}

// drawMonthGrid lays the display month out as weekday-aligned rows of day
// cells, Sunday first.
func drawMonthGrid(rc RenderContext, t Tracker) string {
	first := displayMonth(t, rc.Today)
	days := DaysIn(first.Year, first.Month)

	var b strings.Builder
	col := int(first.Weekday())
	b.WriteString(strings.Repeat(" ", col*3))
	for day := 1; day <= days; day++ {
		b.WriteString(rc.cell(t, NewDate(first.Year, first.Month, day)))
		col++
		if col == 7 && day != days {
			b.WriteString("\n")
			col = 0
		}
	}
	return b.String()
}

// drawYearTallies renders one line per month of the display year with the
// number of goal-reached days.
func drawYearTallies(rc RenderContext, t Tracker) string {
	year := displayMonth(t, rc.Today).Year
	var b strings.Builder
	for m := time.January; m <= time.December; m++ {
		reached := 0
		days := DaysIn(year, m)
		for day := 1; day <= days; day++ {
			if t.ReachedGoal(NewDate(year, m, day)) {
				reached++
			}
		}
		line := fmt.Sprintf("%s %2d/%d", m.String()[:3], reached, days)
		if reached == days {
			line = rc.Reached.Render(line)
		}
		b.WriteString(line)
		if m%2 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}
	return strings.TrimRight(b.String(), "\n ")
}

// draw assembles a card for any habit kind: title, a per-mode body and a
// summary line. summary is the variant-specific progress line for today.
func draw(rc RenderContext, t Tracker, summary string) string {
	var body string
	switch t.Mode() {
	case Day:
		body = drawMonthGrid(rc, t)
	case Month:
		first := displayMonth(t, rc.Today)
		header := rc.Title.Render(fmt.Sprintf("%s %d", first.Month.String()[:3], first.Year))
		body = header + "\n" + drawMonthGrid(rc, t)
	case Year:
		body = drawYearTallies(rc, t)
	}
	return drawTitle(rc, t) + "\n" + body + "\n" + summary
}

// handleKey implements the shared per-habit key bindings. It reports
// whether the key was consumed.
func handleKey(t Tracker, key string) bool {
	switch key {
	case "+", "=", "n":
		t.Modify(Today(), Increment)
	case "-", "_", "p":
		t.Modify(Today(), Decrement)
	case "[":
		t.SetViewMonthOffset(t.ViewMonthOffset() + 1)
	case "]":
		if off := t.ViewMonthOffset(); off > 0 {
			t.SetViewMonthOffset(off - 1)
		}
	case "v":
		t.SetViewMode((t.Mode() + 1) % 3)
	default:
		return false
	}
	return true
}

// Draw renders the counter card.
func (c *Count) Draw(rc RenderContext) string {
	value, _ := c.GetByDate(rc.Today)
	summary := fmt.Sprintf("%d/%d today, %d left", value, c.goal, c.Remaining(rc.Today))
	return draw(rc, c, summary)
}

func (c *Count) OnKey(key string) bool    { return handleKey(c, key) }
func (c *Count) RequiredSize() (int, int) { return CardWidth, CardHeight }
func (c *Count) TakeFocus() bool          { return true }
func (c *Count) HasEntry(date Date) bool  { _, ok := c.stats[date]; return ok }

// Draw renders the toggle card.
func (b *Bit) Draw(rc RenderContext) string {
	value, _ := b.GetByDate(rc.Today)
	summary := "not done today"
	if bool(value) {
		summary = "done today"
	}
	return draw(rc, b, summary)
}

func (b *Bit) OnKey(key string) bool    { return handleKey(b, key) }
func (b *Bit) RequiredSize() (int, int) { return CardWidth, CardHeight }
func (b *Bit) TakeFocus() bool          { return true }
func (b *Bit) HasEntry(date Date) bool  { _, ok := b.stats[date]; return ok }
