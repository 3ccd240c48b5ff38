package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odekit/internal/rk"
	"github.com/san-kum/odekit/internal/state"
)

const historyCapacity = 600

type TickMsg time.Time

// Model steps an ODE live and charts the first state component together
// with the step error estimate.
type Model struct {
	name string
	fn   rk.DerivFn
	tab  *rk.ButcherTableau

	y0      state.Structured
	y       state.Structured
	f       state.Structured
	t, dt   float64
	steps   int
	running bool
	stepErr error

	history []float64
	errNorm float64
}

func NewModel(name string, fn rk.DerivFn, tab *rk.ButcherTableau, y0 state.Structured, dt float64) Model {
	return Model{
		name:    name,
		fn:      fn,
		tab:     tab,
		y0:      y0,
		y:       y0,
		f:       fn(0, y0),
		dt:      dt,
		running: true,
		history: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.y = m.y0
			m.f = m.fn(0, m.y0)
			m.t = 0
			m.steps = 0
			m.history = m.history[:0]
			m.stepErr = nil
		}
	case TickMsg:
		if m.running && m.stepErr == nil {
			res, err := rk.Step(m.fn, m.y, m.f, m.t, m.dt, m.tab)
			if err != nil {
				m.stepErr = err
			} else {
				m.y = res.Y1
				m.f = res.F1
				m.t += m.dt
				m.steps++
				if res.Y1Error != nil {
					m.errNorm = state.Norm(res.Y1Error)
				}
				m.history = append(m.history, state.Leaves(m.y)[0][0])
				if len(m.history) > historyCapacity {
					m.history = m.history[len(m.history)-historyCapacity:]
				}
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(Header(m.name) + "\n")

	if len(m.history) > 1 {
		b.WriteString(Plot(m.history, "y[0]") + "\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(Stat("status", status) + "\n")
	b.WriteString(Stat("t", fmt.Sprintf("%.3f", m.t)) + "\n")
	b.WriteString(Stat("steps", fmt.Sprintf("%d", m.steps)) + "\n")
	if m.tab.CError != nil {
		b.WriteString(Stat("|err est|", fmt.Sprintf("%.3e", m.errNorm)) + "\n")
	}
	if m.stepErr != nil {
		b.WriteString(Stat("error", m.stepErr.Error()) + "\n")
	}
	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return b.String()
}
