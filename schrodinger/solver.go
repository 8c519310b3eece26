package schrodinger

import "qsim/quantum"

// CrankNicolson is a time stepper for iψ̇ = Hψ using the implicit
// Crank–Nicolson discretization
//
//	(I + iΔt/2ħ · H) ψ(t+Δt) = (I - iΔt/2ħ · H) ψ(t)
//
// The propagator is a Cayley transform of H, unitary for Hermitian H, so
// the grid norm is preserved for any step size.
type CrankNicolson struct {
	a *Tridiagonal // I + iΔt/2ħ · H, solved each step
	b *Tridiagonal // I - iΔt/2ħ · H, applied each step
}

// NewCrankNicolson precomputes the stepping matrices for the given
// Hamiltonian and time step. H must be the tridiagonal returned by
// NewHamiltonian with the same constants.
func NewCrankNicolson(h *Tridiagonal, c Constants, dt float64) *CrankNicolson {
	dim := h.Dim()
	lambda := complex(0, dt/(2*c.HBar))

	a := NewTridiagonal(dim)
	b := NewTridiagonal(dim)
	for i := 0; i < dim; i++ {
		a.Main[i] = 1 + lambda*h.Main[i]
		b.Main[i] = 1 - lambda*h.Main[i]
		a.Sub[i] = lambda * h.Sub[i]
		b.Sub[i] = -lambda * h.Sub[i]
		a.Super[i] = lambda * h.Super[i]
		b.Super[i] = -lambda * h.Super[i]
	}
	return &CrankNicolson{a: a, b: b}
}

// Dim returns the grid dimension the stepper was built for.
func (cn *CrankNicolson) Dim() int {
	return cn.a.Dim()
}

// Evolve advances the wavefunction by one time step and returns the new
// state. The input is not modified.
func (cn *CrankNicolson) Evolve(psi *quantum.StateVector) *quantum.StateVector {
	return cn.a.SolveThomas(cn.b.MulVec(psi))
}

// EvolveSteps advances the wavefunction by n consecutive time steps.
func (cn *CrankNicolson) EvolveSteps(psi *quantum.StateVector, n int) *quantum.StateVector {
	for i := 0; i < n; i++ {
		psi = cn.Evolve(psi)
	}
	return psi
}
