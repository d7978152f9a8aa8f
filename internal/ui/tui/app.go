package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/m-zajac/repodash/internal/app"
	"github.com/m-zajac/repodash/internal/debounce"
	"github.com/m-zajac/repodash/internal/render"
)

type field int

const (
	fieldStart field = iota
	fieldEnd
	fieldMetric
	fieldAuthor
	fieldCount
)

type model struct {
	theme Theme
	deps  Deps

	ctx    context.Context
	cancel context.CancelFunc

	start   textinput.Model
	end     textinput.Model
	spinner spinner.Model
	focus   field

	// requestRun asks for a query cycle. Calls are debounced.
	requestRun func()
	running    bool
	width      int
}

// Run starts the dashboard UI and blocks until the user quits.
func Run(deps Deps) error {
	var p *tea.Program
	d := debounce.New(deps.DebounceDelay, func() {
		p.Send(runRequestedMsg{})
	})
	defer d.Stop()

	m := newModel(deps, d.Trigger)
	defer m.cancel()

	p = tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps, requestRun func()) model {
	ctx, cancel := context.WithCancel(context.Background())

	start := newDateInput("start")
	start.Focus()
	end := newDateInput("end")

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		theme:      DefaultTheme(),
		deps:       deps,
		ctx:        ctx,
		cancel:     cancel,
		start:      start,
		end:        end,
		spinner:    sp,
		requestRun: requestRun,
	}
}

func newDateInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = len(app.DateLayout)
	in.Width = len(app.DateLayout)
	in.Prompt = ""
	return in
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		cmdInit(m.ctx, m.deps.Dashboard),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncDates()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 4
		for _, r := range m.regions() {
			r.SetWidth(w)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case initDoneMsg:
		m.deps.Logger.Debug("dashboard initialized")
		return m, nil

	case runRequestedMsg:
		if m.running || m.deps.Controls.Busy() {
			return m, nil
		}
		m.running = true
		return m, cmdRun(m.ctx, m.deps.Dashboard)

	case runDoneMsg:
		m.running = false
		if msg.err != nil {
			m.deps.Logger.Debugf("run finished with error: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter", "ctrl+r":
			if !m.running && !m.deps.Controls.Busy() {
				m.requestRun()
			}
			return m, nil
		case "left", "right":
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			switch m.focus {
			case fieldMetric:
				m.deps.Controls.CycleMetric(step)
				return m, nil
			case fieldAuthor:
				m.deps.Controls.CycleAuthor(step)
				return m, nil
			}
		}
		return m.updateInputs(msg)
	}

	return m.updateInputs(msg)
}

func (m model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	start, end := m.start.Value(), m.end.Value()

	var startCmd, endCmd tea.Cmd
	m.start, startCmd = m.start.Update(msg)
	m.end, endCmd = m.end.Update(msg)
	if m.start.Value() != start || m.end.Value() != end {
		m.deps.Controls.SetDateText(m.start.Value(), m.end.Value())
	}

	return m, tea.Batch(startCmd, endCmd)
}

// syncDates copies dates set by the dashboard into the inputs.
func (m *model) syncDates() {
	start, end, ok := m.deps.Controls.takeDateRange()
	if !ok {
		return
	}
	m.start.SetValue(start)
	m.end.SetValue(end)
}

func (m *model) setFocus(f field) {
	m.focus = field(wrap(int(f), int(fieldCount)))
	m.start.Blur()
	m.end.Blur()
	switch m.focus {
	case fieldStart:
		m.start.Focus()
	case fieldEnd:
		m.end.Focus()
	}
}

func (m model) regions() []*render.Region {
	return []*render.Region{m.deps.Outliers, m.deps.Activity, m.deps.Words}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("repodash"))
	b.WriteString("  ")
	if m.running || m.deps.Controls.Busy() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.Subtitle.Render(" loading..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldStart, "Start "))
	b.WriteString(m.start.View())
	b.WriteString("  ")
	b.WriteString(m.label(fieldEnd, "End "))
	b.WriteString(m.end.View())
	b.WriteString("  ")
	b.WriteString(m.label(fieldMetric, "Metric "))
	b.WriteString(fmt.Sprintf("< %s >", m.deps.Controls.Metric()))
	b.WriteString("  ")
	b.WriteString(m.label(fieldAuthor, "Author "))
	author := m.deps.Controls.Author()
	if author == "" {
		author = fmt.Sprintf("all (%d)", m.deps.Controls.AuthorCount())
	}
	b.WriteString(fmt.Sprintf("< %s >", author))
	b.WriteString("\n")

	b.WriteString(m.theme.Help.Render("tab: next field • ←/→: change selection • enter: run • esc: quit"))
	b.WriteString("\n")
	if err := m.deps.Controls.Err(); err != nil {
		b.WriteString(m.theme.Error.Render("Error: " + err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.card("Outliers", m.deps.Outliers.String()))
	b.WriteString("\n")
	b.WriteString(m.card("Activity", m.deps.Activity.String()))
	b.WriteString("\n")
	b.WriteString(m.card("Words", m.deps.Words.String()))

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

func (m model) label(f field, text string) string {
	if m.focus == f {
		return m.theme.Focused.Render(text)
	}
	return m.theme.Label.Render(text)
}

func (m model) card(title, content string) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		content = m.theme.Subtitle.Render("no data")
	}
	return m.theme.Card.Render(m.theme.Title.Render(title) + "\n" + content)
}
