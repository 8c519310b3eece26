// Package quantum implements finite-dimensional quantum state evolution:
// complex state vectors, dense unitary matrices, a local-subspace gate
// application engine and a sequential circuit executor.
package quantum

import (
	"math/cmplx"

	"qsim/qmath"
)

type Complex = complex128

// StateVector holds the complex amplitudes of a finite-dimensional quantum
// state, indexed 0..Dim-1. For an n-qubit register the dimension is 2^n and
// bit q of an index gives the basis value of qubit q; for a discretized
// wavefunction the dimension is the number of interior grid points.
type StateVector struct {
	Amplitudes []Complex
}

// NewStateVector returns a zero state vector of the given dimension.
func NewStateVector(dim int) *StateVector {
	return &StateVector{Amplitudes: make([]Complex, dim)}
}

// NewBasisState returns the computational basis state |value⟩ of an n-qubit
// register: amplitude 1 at index value, 0 elsewhere.
func NewBasisState(numQubits int, value int) *StateVector {
	s := NewStateVector(1 << numQubits)
	s.Amplitudes[value] = 1
	return s
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps}
}

// Dim returns the Hilbert-space dimension.
func (s *StateVector) Dim() int {
	return len(s.Amplitudes)
}

// At returns the amplitude at the given basis index.
func (s *StateVector) At(i int) Complex {
	return s.Amplitudes[i]
}

// Probabilities returns |amplitude|² for every basis index.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}

// Marginal returns the probability distribution over the given qubit subset,
// summing out every other qubit. Entry j corresponds to the assignment where
// bit b of j is the basis value of qubits[b].
func (s *StateVector) Marginal(qubits ...int) []float64 {
	probs := make([]float64, 1<<len(qubits))
	for i, a := range s.Amplitudes {
		p := real(a * cmplx.Conj(a))
		j := 0
		for b, q := range qubits {
			if i&(1<<q) != 0 {
				j |= 1 << b
			}
		}
		probs[j] += p
	}
	return probs
}

// Norm returns Σ|amplitude|².
func (s *StateVector) Norm() float64 {
	norm := 0.0
	for _, a := range s.Amplitudes {
		norm += real(a * cmplx.Conj(a))
	}
	return norm
}

// Normalize rescales the vector so that Σ|amplitude|² = 1. A vector with
// accumulated norm ≤ 0 is left untouched rather than divided to NaN.
func (s *StateVector) Normalize() {
	norm := s.Norm()
	if norm <= 0 {
		return
	}
	inv := complex(1/qmath.Sqrt(norm), 0)
	for i := range s.Amplitudes {
		s.Amplitudes[i] *= inv
	}
}

// NormalizeGrid rescales a discretized wavefunction so that the Riemann sum
// Σ|amplitude|²·Δx = 1. The zero-norm guard matches Normalize.
func (s *StateVector) NormalizeGrid(dx float64) {
	norm := s.Norm() * dx
	if norm <= 0 {
		return
	}
	inv := complex(1/qmath.Sqrt(norm), 0)
	for i := range s.Amplitudes {
		s.Amplitudes[i] *= inv
	}
}
