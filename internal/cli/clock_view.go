package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/ironlog/internal/cli/formatter"
	"github.com/alexanderramin/ironlog/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// clockTickMsg drives the redraw loop. Ticks from an older generation are
// dropped so that a start/pause cycle never leaves two loops running.
type clockTickMsg struct {
	gen int
	at  time.Time
}

// ── key map ──────────────────────────────────────────────────────────────────

type clockKeyMap struct {
	Toggle  key.Binding
	Reset   key.Binding
	Mode    key.Binding
	Presets key.Binding
	Quit    key.Binding
}

func newClockKeyMap() clockKeyMap {
	return clockKeyMap{
		Toggle:  key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/pause")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Mode:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "rest/stopwatch")),
		Presets: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "preset")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k clockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Mode, k.Presets, k.Quit}
}

func (k clockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── model ────────────────────────────────────────────────────────────────────

// clockModel is the live timer screen behind `ironlog timer watch`.
type clockModel struct {
	ctx      context.Context
	app      *App
	interval time.Duration
	bell     io.Writer

	state   domain.TimerState
	display time.Duration
	presets []domain.TimerPreset
	alarm   domain.CountdownAlarm
	gen     int

	restOver bool
	err      error
	quitting bool

	keys clockKeyMap
	help help.Model
}

func newClockModel(ctx context.Context, app *App) *clockModel {
	m := &clockModel{
		ctx:      ctx,
		app:      app,
		interval: app.pollInterval(),
		keys:     newClockKeyMap(),
		help:     help.New(),
	}
	if app.Bell {
		m.bell = os.Stderr
	}
	m.presets = app.Timer.Presets(ctx)
	m.refresh()
	return m
}

func (m *clockModel) Init() tea.Cmd {
	if m.state.IsRunning {
		return m.tick()
	}
	return nil
}

func (m *clockModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return clockTickMsg{gen: gen, at: t}
	})
}

// refresh re-reads the timer and reports whether the rest countdown just ran out.
func (m *clockModel) refresh() bool {
	now := m.app.now()
	m.state = m.app.Timer.State(m.ctx)
	m.display = domain.ComputeDisplayTime(m.state, now)
	return m.alarm.Observe(m.state, now)
}

func (m *clockModel) running() bool {
	if !m.state.IsRunning {
		return false
	}
	return m.state.Type == domain.TimerStopwatch || m.display > 0
}

// restExpired reports a rest countdown that has run out but was never
// reset. Toggling it starts a fresh countdown instead of pausing at zero.
func (m *clockModel) restExpired() bool {
	return m.state.IsRunning && m.state.Type == domain.TimerRest &&
		domain.ComputeDisplayTime(m.state, m.app.now()) == 0
}

func (m *clockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case clockTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		var cmds []tea.Cmd
		if m.refresh() {
			m.restOver = true
			cmds = append(cmds, m.ring())
		}
		if m.running() {
			cmds = append(cmds, m.tick())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *clockModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		switch {
		case m.restExpired():
			if _, err = m.app.Timer.Reset(m.ctx); err == nil {
				_, err = m.app.Timer.Start(m.ctx, nil)
			}
		case m.state.IsRunning:
			_, err = m.app.Timer.Pause(m.ctx)
		default:
			_, err = m.app.Timer.Start(m.ctx, nil)
		}
	case key.Matches(msg, m.keys.Reset):
		_, err = m.app.Timer.Reset(m.ctx)
	case key.Matches(msg, m.keys.Mode):
		next := domain.TimerStopwatch
		if m.state.Type == domain.TimerStopwatch {
			next = domain.TimerRest
		}
		_, err = m.app.Timer.SetType(m.ctx, next)
	case key.Matches(msg, m.keys.Presets):
		idx := int(msg.Runes[0] - '1')
		if idx >= len(m.presets) {
			return m, nil
		}
		_, err = m.app.Timer.StartPreset(m.ctx, m.presets[idx].ID)
	default:
		return m, nil
	}

	m.err = err
	m.restOver = false
	m.alarm = domain.CountdownAlarm{}
	m.gen++
	m.refresh()
	if m.running() {
		return m, m.tick()
	}
	return m, nil
}

func (m *clockModel) ring() tea.Cmd {
	w := m.bell
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		fmt.Fprint(w, "\a")
		return nil
	}
}

func (m *clockModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.FormatTimer(m.state, m.display))
	b.WriteString("\n")
	if m.restOver {
		b.WriteString(formatter.Header("Rest over!"))
		b.WriteString("\n")
	}
	if len(m.presets) > 0 {
		labels := make([]string, 0, len(m.presets))
		for i, p := range m.presets {
			if i >= 9 {
				break
			}
			labels = append(labels, fmt.Sprintf("%d·%s", i+1, p.Label))
		}
		b.WriteString(formatter.Dim(strings.Join(labels, "  ")))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
