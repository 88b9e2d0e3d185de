package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tally/internal/command"
	"tally/internal/config"
	"tally/internal/habit"
	"tally/internal/logging"
	"tally/internal/registry"
)

// ReloadMsg tells the app the data file changed on disk (sent by the
// registry watcher via Program.Send).
type ReloadMsg struct{}

type keyMap struct {
	PrevHabit key.Binding
	NextHabit key.Binding
	Command   key.Binding
	Save      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevHabit: key.NewBinding(key.WithKeys("h", "left", "shift+tab")),
		NextHabit: key.NewBinding(key.WithKeys("l", "right", "tab")),
		Command:   key.NewBinding(key.WithKeys(":")),
		Save:      key.NewBinding(key.WithKeys("w")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// App is the bubbletea model for the habit grid. One message is fully
// processed before the next; all habit mutation happens inside Update.
type App struct {
	reg    *registry.Registry
	cfg    config.Config
	styles Styles
	keys   keyMap

	width  int
	height int
	focus  int

	input    textinput.Model
	typing   bool
	showHelp bool

	status    string
	statusErr bool
}

// NewApp builds the model around an already-loaded registry.
func NewApp(reg *registry.Registry, cfg config.Config) App {
	input := textinput.New()
	input.Prompt = ":"
	input.CharLimit = 120

	return App{
		reg:    reg,
		cfg:    cfg,
		styles: NewStyles(cfg.Colors),
		keys:   defaultKeyMap(),
		input:  input,
		status: "press : for commands, q to quit",
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case ReloadMsg:
		if err := a.reg.Reload(); err != nil {
			logging.L().Error("reload failed", zap.Error(err))
			return a.withError(fmt.Sprintf("reload failed: %v", err)), nil
		}
		a.clampFocus()
		return a.withStatus("data file changed on disk, reloaded"), nil

	case tea.KeyMsg:
		if a.typing {
			return a.updateCommandBar(msg)
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		return a.updateGrid(msg)
	}
	return a, nil
}

// updateGrid handles keys while the habit grid has focus.
func (a App) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.save()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Save):
		if err := a.save(); err != nil {
			return a.withError(err.Error()), nil
		}
		return a.withStatus("saved"), nil

	case key.Matches(msg, a.keys.Command):
		a.typing = true
		a.input.SetValue("")
		a.input.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.PrevHabit):
		if a.reg.Len() > 0 {
			a.focus = (a.focus - 1 + a.reg.Len()) % a.reg.Len()
		}
		return a, nil

	case key.Matches(msg, a.keys.NextHabit):
		if a.reg.Len() > 0 {
			a.focus = (a.focus + 1) % a.reg.Len()
		}
		return a, nil
	}

	// Everything else belongs to the focused habit.
	if t := a.focused(); t != nil && t.OnKey(msg.String()) {
		return a.withStatus(""), nil
	}
	return a, nil
}

// updateCommandBar handles keys while the : prompt is open.
func (a App) updateCommandBar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.typing = false
		a.input.Blur()
		return a, nil
	case "enter":
		line := a.input.Value()
		a.typing = false
		a.input.Blur()
		return a.execute(line)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// execute applies one parsed command-bar line.
func (a App) execute(line string) (tea.Model, tea.Cmd) {
	cmd, err := command.Parse(line)
	if err != nil {
		if err == command.ErrEmpty {
			return a, nil
		}
		return a.withError(err.Error()), nil
	}

	switch cmd.Kind {
	case command.AddCount:
		a.reg.Add(habit.NewCount(cmd.Name, cmd.Goal))
		return a.withStatus(fmt.Sprintf("added %s (goal %d)", cmd.Name, cmd.Goal)), nil

	case command.AddBit:
		a.reg.Add(habit.NewBit(cmd.Name))
		return a.withStatus("added " + cmd.Name), nil

	case command.Delete:
		if !a.reg.DeleteByName(cmd.Name) {
			return a.withError("no habit named " + cmd.Name), nil
		}
		a.clampFocus()
		return a.withStatus("deleted " + cmd.Name), nil

	case command.TrackUp, command.TrackDown:
		t, ok := a.reg.Get(cmd.Name)
		if !ok {
			return a.withError("no habit named " + cmd.Name), nil
		}
		event := habit.Increment
		if cmd.Kind == command.TrackDown {
			event = habit.Decrement
		}
		t.Modify(habit.Today(), event)
		return a.withStatus(fmt.Sprintf("%s: %d left today", cmd.Name, t.Remaining(habit.Today()))), nil

	case command.MonthPrev:
		if t := a.focused(); t != nil {
			t.SetViewMonthOffset(t.ViewMonthOffset() + 1)
		}
		return a, nil

	case command.MonthNext:
		if t := a.focused(); t != nil {
			if off := t.ViewMonthOffset(); off > 0 {
				t.SetViewMonthOffset(off - 1)
			}
		}
		return a, nil

	case command.SetView:
		if t := a.focused(); t != nil {
			t.SetViewMode(cmd.Mode)
		}
		return a, nil

	case command.Write:
		if err := a.save(); err != nil {
			return a.withError(err.Error()), nil
		}
		return a.withStatus("saved"), nil

	case command.Quit:
		a.save()
		return a, tea.Quit

	case command.Help:
		a.showHelp = true
		return a, nil
	}
	return a, nil
}

func (a App) View() string {
	if a.showHelp {
		return a.styles.Help.Render(command.Usage) + "\n\n" +
			a.styles.Status.Render("press any key to return")
	}

	body := a.renderGrid()
	footer := a.renderFooter()
	return body + "\n" + footer
}

// renderGrid lays the habit cards out in rows sized to the terminal width.
func (a App) renderGrid() string {
	habits := a.reg.All()
	if len(habits) == 0 {
		return a.styles.Status.Render("no habits yet — try :add Pushups 20")
	}

	cardW, _ := habits[0].RequiredSize()
	perRow := 1
	if a.width > 0 {
		if n := a.width / (cardW + 4); n > 1 {
			perRow = n
		}
	}

	today := habit.Today()
	var rows []string
	for start := 0; start < len(habits); start += perRow {
		end := start + perRow
		if end > len(habits) {
			end = len(habits)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			focused := i == a.focus
			rc := a.styles.RenderContext(a.cfg.Look, today, focused)
			frame := a.styles.Card
			if focused {
				frame = a.styles.FocusedCard
			}
			cards = append(cards, frame.Render(habits[i].Draw(rc)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a App) renderFooter() string {
	if a.typing {
		return a.input.View()
	}
	if a.statusErr {
		return a.styles.Error.Render(a.status)
	}
	return a.styles.Status.Render(a.status)
}

// focused returns the habit under the cursor, nil when the grid is empty.
func (a *App) focused() habit.Tracker {
	if a.reg.Len() == 0 {
		return nil
	}
	a.clampFocus()
	return a.reg.All()[a.focus]
}

func (a *App) clampFocus() {
	if a.focus >= a.reg.Len() {
		a.focus = a.reg.Len() - 1
	}
	if a.focus < 0 {
		a.focus = 0
	}
}

func (a App) save() error {
	if err := a.reg.Save(); err != nil {
		logging.L().Error("save failed", zap.Error(err))
		return fmt.Errorf("save failed: %w", err)
	}
	return nil
}

func (a App) withStatus(s string) App {
	a.status = s
	a.statusErr = false
	return a
}

func (a App) withError(s string) App {
	a.status = s
	a.statusErr = true
	return a
}
