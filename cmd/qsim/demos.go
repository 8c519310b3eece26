package main

import (
	"fmt"

	"qsim/qmath"
	"qsim/quantum"
	"qsim/schrodinger"
)

// demoKind selects which viewer a demo runs in.
type demoKind int

const (
	kindCircuit demoKind = iota
	kindWave
)

// demoParam describes the single adjustable parameter of a demo.
type demoParam struct {
	label   string
	def     float64
	example string
}

// circuitRun is a built circuit plus a display label per operation.
type circuitRun struct {
	circuit *quantum.Circuit
	labels  []string
}

// demo is one entry in the launcher menu.
type demo struct {
	name  string
	desc  string
	kind  demoKind
	param *demoParam

	// marginal, when set, adds a summed-out distribution panel over the
	// listed qubits to the circuit viewer.
	marginal      []int
	marginalLabel string

	buildCircuit func(p float64) (*circuitRun, error)
	buildWave    func(p float64) (*schrodinger.ParticleInBox, error)
}

// circuitBuilder accumulates labeled operations, keeping the first error.
type circuitBuilder struct {
	run circuitRun
	err error
}

func newCircuitBuilder(width int) *circuitBuilder {
	c, err := quantum.NewCircuit(width)
	return &circuitBuilder{run: circuitRun{circuit: c}, err: err}
}

func (b *circuitBuilder) add(label string, gate quantum.Matrix, qubits ...int) {
	if b.err != nil {
		return
	}
	if err := b.run.circuit.AddGate(gate, qubits...); err != nil {
		b.err = err
		return
	}
	b.run.labels = append(b.run.labels, label)
}

func (b *circuitBuilder) build() (*circuitRun, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &b.run, nil
}

func bellDemo(float64) (*circuitRun, error) {
	b := newCircuitBuilder(2)
	b.add("H q0", quantum.Hadamard(), 0)
	b.add("CX q0,q1", quantum.CNOT(), 0, 1)
	return b.build()
}

func ghzDemo(float64) (*circuitRun, error) {
	b := newCircuitBuilder(3)
	b.add("H q0", quantum.Hadamard(), 0)
	b.add("CX q0,q1", quantum.CNOT(), 0, 1)
	b.add("CX q1,q2", quantum.CNOT(), 1, 2)
	return b.build()
}

// diceDemo prepares six equally likely outcomes on three qubits: Ry(θ)
// biases one qubit to P(|1>)=2/3, a workspace qubit splits that branch, and
// a Hadamard doubles the count.
func diceDemo(theta float64) (*circuitRun, error) {
	b := newCircuitBuilder(3)
	b.add(fmt.Sprintf("RY(%s) q2", formatParam(theta)), quantum.RotationY(theta), 2)
	b.add("X q2", quantum.PauliX(), 2)
	b.add("RY(pi/4) q1", quantum.RotationY(qmath.Pi/4), 1)
	b.add("CX q2,q1", quantum.CNOT(), 2, 1)
	b.add("RY(-pi/4) q1", quantum.RotationY(-qmath.Pi/4), 1)
	b.add("CX q2,q1", quantum.CNOT(), 2, 1)
	b.add("X q1", quantum.PauliX(), 1)
	b.add("H q0", quantum.Hadamard(), 0)
	return b.build()
}

// shorDemo wires the 8-qubit period-finding circuit for N=21, a=2: a
// 3-qubit phase register, a 5-qubit work register, and an inverse QFT on
// the phase register at the end.
func shorDemo(float64) (*circuitRun, error) {
	b := newCircuitBuilder(8)
	for q := 0; q < 3; q++ {
		b.add(fmt.Sprintf("H q%d", q), quantum.Hadamard(), q)
	}
	b.add("X q3", quantum.PauliX(), 3)
	for ctrl := 0; ctrl < 3; ctrl++ {
		for w := 3; w < 7; w++ {
			b.add(fmt.Sprintf("CX q%d,q%d", ctrl, w), quantum.CNOT(), ctrl, w)
			b.add(fmt.Sprintf("CCX q%d,q%d,q%d", ctrl, w, w+1), quantum.Toffoli(), ctrl, w, w+1)
		}
	}
	b.add("IQFT q0..q2", quantum.IQFT(3), 0, 1, 2)
	return b.build()
}

// tunnelingDemo fires a Gaussian packet at a rectangular barrier of the
// given height; part of it leaks through.
func tunnelingDemo(height float64) (*schrodinger.ParticleInBox, error) {
	cfg := schrodinger.BoxConfig{Points: 201, L: 1, Dt: 1e-4}
	seed := schrodinger.GaussianPacket(cfg.Interior(), cfg.Dx(), 0.25, 0.05, 10*qmath.Pi)
	return schrodinger.NewParticleInBox(cfg, schrodinger.Barrier(0.45, 0.55, height), seed)
}

// boxDemo evolves the n-th infinite-well eigenstate; its probability cloud
// stands still while the phase turns.
func boxDemo(n float64) (*schrodinger.ParticleInBox, error) {
	mode := int(n)
	if mode < 1 {
		return nil, fmt.Errorf("eigenstate index must be >= 1, got %v", n)
	}
	cfg := schrodinger.BoxConfig{Points: 121, L: 1, Dt: 1e-4}
	seed := schrodinger.BoxEigenstate(cfg.Interior(), cfg.Dx(), mode)
	return schrodinger.NewParticleInBox(cfg, schrodinger.Free, seed)
}

// hydrogenBohrRadius is the effective Bohr radius for the hydrogen demo;
// it keeps the orbital exponent within the truncated-series range across
// the unit box for every supported shell.
const hydrogenBohrRadius = 0.05

// hydrogenShells orders the supported shells for menu selection, 1-based.
var hydrogenShells = []struct {
	label string
	qn    schrodinger.QuantumNumber
}{
	{"2s", schrodinger.Shell2s},
	{"2p", schrodinger.Shell2p},
	{"3s", schrodinger.Shell3s},
	{"3p", schrodinger.Shell3p},
	{"3d", schrodinger.Shell3d},
	{"4s", schrodinger.Shell4s},
	{"4p", schrodinger.Shell4p},
	{"4d", schrodinger.Shell4d},
	{"4f", schrodinger.Shell4f},
}

// hydrogenDemo evolves a hydrogen radial orbital in its soft-Coulomb well.
func hydrogenDemo(shell float64) (*schrodinger.ParticleInBox, error) {
	idx := int(shell) - 1
	if idx < 0 || idx >= len(hydrogenShells) {
		return nil, fmt.Errorf("shell must be 1..%d (2s 2p 3s 3p 3d 4s 4p 4d 4f), got %v", len(hydrogenShells), shell)
	}
	cfg := schrodinger.BoxConfig{Points: 96, L: 1, Dt: 1e-4}
	seed, err := schrodinger.HydrogenOrbital(cfg.Interior(), cfg.Dx(), hydrogenShells[idx].qn, hydrogenBohrRadius, 0)
	if err != nil {
		return nil, err
	}
	return schrodinger.NewParticleInBox(cfg, schrodinger.SoftCoulomb(1, 0, 1e-10), seed)
}

// demoMenu defines the launcher entries.
var demoMenu = []demo{
	{
		name:         "Bell Pair",
		desc:         "two qubits, maximally entangled",
		kind:         kindCircuit,
		buildCircuit: bellDemo,
	},
	{
		name:         "GHZ State",
		desc:         "three-qubit entanglement",
		kind:         kindCircuit,
		buildCircuit: ghzDemo,
	},
	{
		name:         "Quantum Dice",
		desc:         "six fair outcomes on three qubits",
		kind:         kindCircuit,
		param:        &demoParam{label: "bias angle θ", def: 1.23095941734, example: "1.23095941734"},
		buildCircuit: diceDemo,
	},
	{
		name:          "Shor N=21",
		desc:          "period finding, 8 qubits",
		kind:          kindCircuit,
		marginal:      []int{0, 1, 2},
		marginalLabel: "phase register q0..q2",
		buildCircuit:  shorDemo,
	},
	{
		name:      "Quantum Tunneling",
		desc:      "wave packet vs. potential barrier",
		kind:      kindWave,
		param:     &demoParam{label: "barrier height", def: 3000, example: "3000"},
		buildWave: tunnelingDemo,
	},
	{
		name:      "Particle in a Box",
		desc:      "stationary well eigenstate",
		kind:      kindWave,
		param:     &demoParam{label: "eigenstate n", def: 1, example: "1, 2, 3..."},
		buildWave: boxDemo,
	},
	{
		name:      "Hydrogen Orbital",
		desc:      "radial shell in a soft-Coulomb well",
		kind:      kindWave,
		param:     &demoParam{label: "shell (1=2s..9=4f)", def: 1, example: "1..9"},
		buildWave: hydrogenDemo,
	},
}
