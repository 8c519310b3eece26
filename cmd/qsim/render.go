package main

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qsim/qmath"
)

// blockGlyphs maps a 0..1 level to an eighth-block character.
var blockGlyphs = []rune("▁▂▃▄▅▆▇█")

func blockFor(level float64) rune {
	if level <= 0 {
		return blockGlyphs[0]
	}
	idx := int(level * float64(len(blockGlyphs)))
	if idx >= len(blockGlyphs) {
		idx = len(blockGlyphs) - 1
	}
	return blockGlyphs[idx]
}

// phaseBand maps arg(ψ) in (-π, π] to one of the five color bands.
func phaseBand(phase float64) int {
	band := int((phase + qmath.Pi) / (2 * qmath.Pi / 5))
	if band < 0 {
		band = 0
	}
	if band > 4 {
		band = 4
	}
	return band
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var frame string
	switch m.focus {
	case focusCircuit:
		frame = m.renderCircuitView()
	case focusWave:
		frame = m.renderWaveView()
	default:
		frame = m.renderMenuScreen()
	}

	if m.focus == focusParam {
		frame = overlayAt(frame, m.renderParamOverlay(), 4, 3)
	}
	return frame
}

// ──────────────────────────── Menu ────────────────────────────

func (m Model) renderMenuScreen() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("qsim — quantum state evolution"))
	sb.WriteString("\n\n")

	for i, d := range demoMenu {
		tag := "circuit"
		if d.kind == kindWave {
			tag = "wave"
		}
		line := fmt.Sprintf("%-20s %s", d.name, dimStyle.Render(d.desc))
		if i == m.menuIdx {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(line))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(line))
		}
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  [%s]", tag)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.statusMsg != "" {
		sb.WriteString(statusStyle.Render(m.statusMsg))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("↑↓/jk Select  ⏎ Run  q Quit"))

	return frameStyle.Width(m.width - 2).Render(sb.String())
}

// renderParamOverlay renders the parameter input popup.
func (m Model) renderParamOverlay() string {
	var sb strings.Builder
	p := m.pending.param
	sb.WriteString(titleStyle.Render(m.pending.name))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s: %s", p.label, m.paramInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("e.g. %s   ⏎ Run  Esc ✕", p.example)))
	return menuBorderStyle.Render(sb.String())
}

// ──────────────────────────── Circuit viewer ────────────────────────────

// gridSymbol picks the single character drawn for qubit q in an operation
// column: gate initial for one-qubit gates, control/target dots otherwise.
func gridSymbol(label string, qubits []int, q int) string {
	if strings.HasPrefix(label, "IQFT") {
		return "Q"
	}
	if len(qubits) == 1 {
		return string(label[0])
	}
	if q == qubits[len(qubits)-1] {
		return "⊕"
	}
	return "●"
}

// renderCircuitGrid draws one wire row per qubit with a column per
// operation. Columns up to the selected step are lit, the selected one is
// highlighted, the rest are dim.
func (m Model) renderCircuitGrid() string {
	ops := m.run.circuit.Ops()
	width := m.run.circuit.Width()

	var sb strings.Builder
	for q := 0; q < width; q++ {
		sb.WriteString(basisLabelStyle.Render(fmt.Sprintf("q%-2d", q)))
		for j, op := range ops {
			qubits := op.Qubits()
			lo, hi := qubits[0], qubits[0]
			touched := false
			for _, t := range qubits {
				if t < lo {
					lo = t
				}
				if t > hi {
					hi = t
				}
				if t == q {
					touched = true
				}
			}

			cell := "───"
			if touched {
				cell = "─" + gridSymbol(m.run.labels[j], qubits, q) + "─"
			} else if q > lo && q < hi {
				cell = "─┼─"
			}

			switch {
			case j == m.stepIdx-1:
				cell = stepLabelStyle.Render(cell)
			case j < m.stepIdx:
				cell = probBarStyle.Render(cell)
			default:
				cell = dimStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderProbBar renders one histogram bar for a probability in [0, 1].
func renderProbBar(p float64) string {
	filled := int(p*probBarW + 0.5)
	if filled > probBarW {
		filled = probBarW
	}
	return probBarStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", probBarW-filled))
}

// renderCircuitView shows the circuit grid and the state after the selected
// operation as a probability histogram over basis states.
func (m Model) renderCircuitView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.active.name))
	sb.WriteString("\n\n")

	label := "initial state"
	if m.stepIdx > 0 {
		label = m.run.labels[m.stepIdx-1]
	}
	fmt.Fprintf(&sb, "%s %s\n\n",
		stepLabelStyle.Render(fmt.Sprintf("step %d/%d", m.stepIdx, len(m.snapshots)-1)),
		label)

	sb.WriteString(m.renderCircuitGrid())
	sb.WriteString("\n")

	state := m.snapshots[m.stepIdx]
	width := m.run.circuit.Width()
	probs := state.Probabilities()

	type entry struct {
		basis int
		prob  float64
	}
	entries := make([]entry, 0, len(probs))
	for i, p := range probs {
		entries = append(entries, entry{basis: i, prob: p})
	}
	// Wide registers only show the most probable outcomes.
	if len(entries) > probListMax {
		sort.Slice(entries, func(a, b int) bool { return entries[a].prob > entries[b].prob })
		entries = entries[:probListMax]
		sort.Slice(entries, func(a, b int) bool { return entries[a].basis < entries[b].basis })
	}

	for _, e := range entries {
		bits := fmt.Sprintf("%0*b", width, e.basis)
		phase := ""
		if e.prob > 1e-9 {
			band := phaseBand(cmplx.Phase(state.At(e.basis)))
			phase = waveBandStyles[band].Render("●")
		}
		fmt.Fprintf(&sb, "%s %s %6.2f%% %s\n",
			basisLabelStyle.Render("|"+bits+"⟩"), renderProbBar(e.prob), e.prob*100, phase)
	}

	if m.active.marginal != nil {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(m.active.marginalLabel))
		sb.WriteString("\n")
		for j, p := range state.Marginal(m.active.marginal...) {
			bits := fmt.Sprintf("%0*b", len(m.active.marginal), j)
			fmt.Fprintf(&sb, "%s %s %6.2f%%\n",
				basisLabelStyle.Render("|"+bits+"⟩"), renderProbBar(p), p*100)
		}
	}

	controls := controlsStyle.Render("←→/hl Step  g/G First/Last  Esc Menu  q Quit")
	body := frameStyle.Width(m.width - 2).Render(sb.String())
	return lipgloss.JoinVertical(lipgloss.Left, body, controls)
}

// ──────────────────────────── Wave viewer ────────────────────────────

// renderWaveView draws |ψ|² as a row of block glyphs, color-coded by the
// local phase, with the potential profile underneath.
func (m Model) renderWaveView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.active.name))
	sb.WriteString("\n\n")

	psi := m.box.State()
	cfg := m.box.Config()
	plotW := m.width - 8
	if plotW < 10 {
		plotW = 10
	}
	if plotW > psi.Dim() {
		plotW = psi.Dim()
	}

	// Downsample the grid onto plot columns by cell maximum.
	levels := make([]float64, plotW)
	bands := make([]int, plotW)
	maxP := 0.0
	for col := 0; col < plotW; col++ {
		lo := col * psi.Dim() / plotW
		hi := (col + 1) * psi.Dim() / plotW
		for i := lo; i < hi; i++ {
			a := psi.At(i)
			p := real(a)*real(a) + imag(a)*imag(a)
			if p > levels[col] {
				levels[col] = p
				bands[col] = phaseBand(cmplx.Phase(a))
			}
		}
		if levels[col] > maxP {
			maxP = levels[col]
		}
	}

	var wave strings.Builder
	for col := 0; col < plotW; col++ {
		level := 0.0
		if maxP > 0 {
			level = levels[col] / maxP
		}
		wave.WriteString(waveBandStyles[bands[col]].Render(string(blockFor(level))))
	}
	sb.WriteString("  " + wave.String() + "\n")

	sb.WriteString("  " + m.renderPotentialRow(plotW) + "\n\n")

	status := "running"
	if m.paused {
		status = "paused"
	}
	norm := 0.0
	for _, p := range m.box.Probabilities() {
		norm += p
	}
	fmt.Fprintf(&sb, "  t = %.4f   norm = %.6f   %s\n",
		float64(m.elapsed)*cfg.Dt, norm, statusStyle.Render(status))

	controls := controlsStyle.Render("Space Pause  r Restart  Esc Menu  q Quit")
	body := frameStyle.Width(m.width - 2).Render(sb.String())
	return lipgloss.JoinVertical(lipgloss.Left, body, controls)
}

// renderPotentialRow sketches the potential profile under the wave plot.
func (m Model) renderPotentialRow(plotW int) string {
	cfg := m.box.Config()
	pot := m.box.Potential()

	samples := make([]float64, plotW)
	minV, maxV := 0.0, 0.0
	for col := 0; col < plotW; col++ {
		x := cfg.Dx() * (1 + float64(col)/float64(plotW-1)*float64(cfg.Interior()-1))
		v := pot(x)
		samples[col] = v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	span := maxV - minV
	var row strings.Builder
	for _, v := range samples {
		if span <= 0 {
			row.WriteRune('▁')
			continue
		}
		row.WriteRune(blockFor((v - minV) / span))
	}
	return wellStyle.Render(row.String())
}
