package quantum

import "fmt"

// Circuit is a fixed-width qubit register together with an ordered sequence
// of gate applications. Execution is purely sequential and deterministic:
// there is no measurement, no branching and no collapse, only unitary
// transformations of the state vector.
type Circuit struct {
	width int
	ops   []*Op
}

// NewCircuit returns an empty circuit over the given number of qubits.
func NewCircuit(width int) (*Circuit, error) {
	if width < 1 {
		return nil, fmt.Errorf("circuit width must be at least 1, got %d", width)
	}
	return &Circuit{width: width}, nil
}

// Width returns the number of qubits in the register.
func (c *Circuit) Width() int {
	return c.width
}

// Ops returns the gate sequence.
func (c *Circuit) Ops() []*Op {
	return c.ops
}

// Add appends a gate application to the sequence. A gate whose targets fall
// outside the register is a construction-time contract violation, rejected
// before anything executes.
func (c *Circuit) Add(op *Op) error {
	if op.MaxQubit() >= c.width {
		return fmt.Errorf("gate targets qubit %d outside %d-qubit register", op.MaxQubit(), c.width)
	}
	c.ops = append(c.ops, op)
	return nil
}

// AddGate validates and appends a gate in one step.
func (c *Circuit) AddGate(matrix Matrix, qubits ...int) error {
	op, err := NewOp(matrix, qubits...)
	if err != nil {
		return err
	}
	return c.Add(op)
}

// Run executes the gate sequence starting from the all-zero basis state
// |0…0⟩ and returns the final state vector.
func (c *Circuit) Run() *StateVector {
	state := NewBasisState(c.width, 0)
	for _, op := range c.ops {
		state = op.Apply(state)
	}
	return state
}

// Snapshots executes the circuit and returns the state after each gate,
// preceded by the initial state: Snapshots()[i] is the state with the first
// i gates applied.
func (c *Circuit) Snapshots() []*StateVector {
	states := make([]*StateVector, 0, len(c.ops)+1)
	state := NewBasisState(c.width, 0)
	states = append(states, state)
	for _, op := range c.ops {
		state = op.Apply(state)
		states = append(states, state)
	}
	return states
}
