package quantum

import (
	"fmt"

	"qsim/qmath"
)

// unitaryTol is the component-wise tolerance for the unitarity check
// performed when an Op is constructed.
const unitaryTol = 1e-9

// Op is an application of a k-qubit unitary to a fixed list of target qubit
// positions inside a larger register. The order of the target list defines
// the mapping between local basis bits and global positions: local bit b
// corresponds to qubits[b]. An Op is immutable after construction and can
// be applied to any state vector large enough to hold its targets.
type Op struct {
	matrix Matrix
	qubits []int
	mask   int
}

// NewOp validates the gate matrix and target list and returns the bound
// operation. The matrix must be square with dimension exactly 2^len(qubits)
// and unitary within 1e-9; targets must be distinct and non-negative.
// Violations are configuration errors, rejected before any state is touched.
func NewOp(matrix Matrix, qubits ...int) (*Op, error) {
	if !matrix.IsSquare() {
		return nil, fmt.Errorf("gate matrix is not square")
	}
	dim := matrix.Dim()
	if !qmath.IsPowerOfTwo(dim) {
		return nil, fmt.Errorf("gate matrix dimension %d is not a power of two", dim)
	}
	k := qmath.Log2(dim)
	if len(qubits) != k {
		return nil, fmt.Errorf("gate acts on %d qubit(s) but %d target(s) given", k, len(qubits))
	}
	mask := 0
	for _, q := range qubits {
		if q < 0 {
			return nil, fmt.Errorf("target qubit %d is negative", q)
		}
		bit := 1 << q
		if mask&bit != 0 {
			return nil, fmt.Errorf("duplicate target qubit %d", q)
		}
		mask |= bit
	}
	if !matrix.IsUnitary(unitaryTol) {
		return nil, fmt.Errorf("gate matrix is not unitary")
	}

	targets := make([]int, len(qubits))
	copy(targets, qubits)
	return &Op{matrix: matrix, qubits: targets, mask: mask}, nil
}

// MustOp is like NewOp but panics on a configuration error. It is intended
// for gate sequences written out as literals.
func MustOp(matrix Matrix, qubits ...int) *Op {
	op, err := NewOp(matrix, qubits...)
	if err != nil {
		panic(err)
	}
	return op
}

// Qubits returns the target positions the operation acts on.
func (op *Op) Qubits() []int {
	targets := make([]int, len(op.qubits))
	copy(targets, op.qubits)
	return targets
}

// MaxQubit returns the highest target position.
func (op *Op) MaxQubit() int {
	maxQ := 0
	for _, q := range op.qubits {
		if q > maxQ {
			maxQ = q
		}
	}
	return maxQ
}

// Apply applies the gate to a global state vector and returns the new
// vector, equivalent to (I ⊗ … ⊗ U ⊗ … ⊗ I)·ψ with U inserted at the
// target tensor positions regardless of adjacency.
//
// The state is partitioned into independent 2^k blocks: every global index
// with all target bits clear is the base of one block, one fixed assignment
// of the non-target qubits. Per block the 2^k local amplitudes are gathered,
// multiplied by the gate matrix and scattered back through the same index
// mapping, so each amplitude is touched exactly once.
//
// The state dimension must be a power of two large enough to hold the
// target positions; Apply panics otherwise (the circuit executor checks
// ranges when ops are added).
func (op *Op) Apply(state *StateVector) *StateVector {
	n := state.Dim()
	if !qmath.IsPowerOfTwo(n) || op.mask >= n {
		panic(fmt.Sprintf("quantum: gate on qubits %v cannot apply to state of dimension %d", op.qubits, n))
	}

	k := len(op.qubits)
	blockDim := 1 << k
	result := state.Clone()
	localIn := make([]Complex, blockDim)

	for base := 0; base < n; base++ {
		if base&op.mask != 0 {
			continue
		}

		for localIdx := 0; localIdx < blockDim; localIdx++ {
			localIn[localIdx] = result.Amplitudes[op.globalIndex(base, localIdx)]
		}

		localOut := op.matrix.MulVec(localIn)

		for localIdx := 0; localIdx < blockDim; localIdx++ {
			result.Amplitudes[op.globalIndex(base, localIdx)] = localOut[localIdx]
		}
	}

	return result
}

// globalIndex maps a local block index onto the global index obtained from
// base by setting the target bit positions selected by the local bits.
func (op *Op) globalIndex(base, localIdx int) int {
	globalIdx := base
	for b, q := range op.qubits {
		if localIdx&(1<<b) != 0 {
			globalIdx |= 1 << q
		}
	}
	return globalIdx
}
