package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"qsim/quantum"
	"qsim/schrodinger"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusMenu focus = iota
	focusParam
	focusCircuit
	focusWave
)

const (
	tickInterval = 50 * time.Millisecond
	stepsPerTick = 20 // integration steps folded into one frame
)

// tickMsg drives continuous wave evolution.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	focus  focus

	menuIdx   int
	statusMsg string

	// Parameter overlay state
	paramInput textinput.Model
	pending    *demo

	// Circuit viewer state
	active    *demo
	run       *circuitRun
	snapshots []*quantum.StateVector
	stepIdx   int

	// Wave viewer state
	box     *schrodinger.ParticleInBox
	paused  bool
	elapsed int // integration steps taken
}

func initialModel() Model {
	ti := textinput.New()
	ti.CharLimit = 24
	ti.Width = 24

	return Model{
		focus:      focusMenu,
		paramInput: ti,
	}
}

// launch builds and activates the selected demo with the given parameter.
func (m *Model) launch(d *demo, param float64) tea.Cmd {
	m.statusMsg = ""
	switch d.kind {
	case kindCircuit:
		run, err := d.buildCircuit(param)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Cannot launch %s: %v", d.name, err)
			m.focus = focusMenu
			return nil
		}
		m.active = d
		m.run = run
		m.snapshots = run.circuit.Snapshots()
		m.stepIdx = len(m.snapshots) - 1
		m.focus = focusCircuit
		return nil

	case kindWave:
		box, err := d.buildWave(param)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Cannot launch %s: %v", d.name, err)
			m.focus = focusMenu
			return nil
		}
		m.active = d
		m.box = box
		m.paused = false
		m.elapsed = 0
		m.focus = focusWave
		return tickCmd()
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.focus == focusWave && !m.paused {
			m.box.Evolve(stepsPerTick)
			m.elapsed += stepsPerTick
			return m, tickCmd()
		}

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusMenu:
			m.statusMsg = ""
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menuIdx > 0 {
					m.menuIdx--
				}
			case "down", "j":
				if m.menuIdx < len(demoMenu)-1 {
					m.menuIdx++
				}
			case "enter":
				d := &demoMenu[m.menuIdx]
				if d.param != nil {
					m.pending = d
					m.paramInput.SetValue(formatParam(d.param.def))
					m.paramInput.CursorEnd()
					m.paramInput.Focus()
					m.focus = focusParam
					break
				}
				return m, m.launch(d, 0)
			}

		case focusParam:
			switch key {
			case "esc":
				m.pending = nil
				m.paramInput.Blur()
				m.focus = focusMenu
			case "enter":
				d := m.pending
				val := d.param.def
				if raw := m.paramInput.Value(); raw != "" {
					parsed, ok := parseParamExpr(raw)
					if !ok {
						m.statusMsg = "Invalid value — use numbers or pi expressions (e.g. pi/2, 3*pi/4)"
						break
					}
					val = parsed
				}
				m.pending = nil
				m.paramInput.Blur()
				return m, m.launch(d, val)
			default:
				var cmd tea.Cmd
				m.paramInput, cmd = m.paramInput.Update(msg)
				return m, cmd
			}

		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "esc":
				m.focus = focusMenu
			case "left", "h":
				if m.stepIdx > 0 {
					m.stepIdx--
				}
			case "right", "l":
				if m.stepIdx < len(m.snapshots)-1 {
					m.stepIdx++
				}
			case "home", "g":
				m.stepIdx = 0
			case "end", "G":
				m.stepIdx = len(m.snapshots) - 1
			}

		case focusWave:
			switch key {
			case "q":
				return m, tea.Quit
			case "esc":
				m.focus = focusMenu
			case " ":
				m.paused = !m.paused
				if !m.paused {
					return m, tickCmd()
				}
			case "r":
				box, err := m.active.buildWave(m.lastWaveParam())
				if err == nil {
					m.box = box
					m.elapsed = 0
				}
			}
		}
	}

	return m, nil
}

// lastWaveParam reconstructs the parameter the running wave demo was
// launched with; demos without a parameter report zero.
func (m *Model) lastWaveParam() float64 {
	if m.active == nil || m.active.param == nil {
		return 0
	}
	if raw := m.paramInput.Value(); raw != "" {
		if v, ok := parseParamExpr(raw); ok {
			return v
		}
	}
	return m.active.param.def
}
