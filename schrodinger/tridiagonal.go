// Package schrodinger evolves 1D discretized wavefunctions under the
// time-dependent Schrödinger equation: a finite-difference Hamiltonian over
// an interior grid with Dirichlet walls, integrated with the implicit
// Crank–Nicolson scheme and an O(N) tridiagonal solve.
package schrodinger

import "qsim/quantum"

// Tridiagonal is a compact representation of a tridiagonal matrix storing
// only the three diagonals as length-Dim slices. Sub[0] and Super[Dim-1]
// are unused placeholders, never read. Off-tridiagonal entries are
// implicitly zero; a 1D finite-difference Hamiltonian never has any, so
// dense storage would turn an O(N) problem into O(N²).
type Tridiagonal struct {
	Sub   []quantum.Complex
	Main  []quantum.Complex
	Super []quantum.Complex
}

// NewTridiagonal returns a zero tridiagonal matrix of the given dimension.
func NewTridiagonal(dim int) *Tridiagonal {
	return &Tridiagonal{
		Sub:   make([]quantum.Complex, dim),
		Main:  make([]quantum.Complex, dim),
		Super: make([]quantum.Complex, dim),
	}
}

// Dim returns the matrix dimension.
func (m *Tridiagonal) Dim() int {
	return len(m.Main)
}

// MulVec returns the matrix-vector product M·x exploiting the tridiagonal
// structure: result[i] = Main[i]·x[i] + Sub[i]·x[i-1] + Super[i]·x[i+1]
// with the boundary terms dropped.
func (m *Tridiagonal) MulVec(x *quantum.StateVector) *quantum.StateVector {
	dim := m.Dim()
	result := quantum.NewStateVector(dim)
	for i := 0; i < dim; i++ {
		sum := m.Main[i] * x.Amplitudes[i]
		if i > 0 {
			sum += m.Sub[i] * x.Amplitudes[i-1]
		}
		if i+1 < dim {
			sum += m.Super[i] * x.Amplitudes[i+1]
		}
		result.Amplitudes[i] = sum
	}
	return result
}

// SolveThomas solves M·x = d by the Thomas algorithm: forward elimination
// followed by back substitution, O(Dim) total. The receiver is not
// modified; elimination works on scratch copies of the main diagonal and
// right-hand side.
//
// The pivot divisions are unguarded: a degenerate system with a zero pivot
// propagates NaN through the remainder of the solution instead of being
// trapped, which is treated as fatal numerical ill-conditioning.
func (m *Tridiagonal) SolveThomas(d *quantum.StateVector) *quantum.StateVector {
	dim := m.Dim()

	diag := make([]quantum.Complex, dim)
	copy(diag, m.Main)
	rhs := d.Clone()

	for i := 1; i < dim; i++ {
		w := m.Sub[i] / diag[i-1]
		diag[i] -= w * m.Super[i-1]
		rhs.Amplitudes[i] -= w * rhs.Amplitudes[i-1]
	}

	result := quantum.NewStateVector(dim)
	result.Amplitudes[dim-1] = rhs.Amplitudes[dim-1] / diag[dim-1]
	for i := dim - 2; i >= 0; i-- {
		result.Amplitudes[i] = (rhs.Amplitudes[i] - m.Super[i]*result.Amplitudes[i+1]) / diag[i]
	}
	return result
}
