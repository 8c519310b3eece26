package schrodinger

// Potential evaluates the potential energy V(x) at a grid position.
type Potential func(x float64) float64

// Constants holds the physical parameters of a 1D grid problem.
type Constants struct {
	HBar float64
	Mass float64
	Dx   float64
}

// DefaultConstants returns natural units (ħ = m = 1) with the given grid
// spacing.
func DefaultConstants(dx float64) Constants {
	return Constants{HBar: 1, Mass: 1, Dx: dx}
}

// NewHamiltonian builds the finite-difference Hamiltonian over dim interior
// grid points. The kinetic term is the standard second-difference stencil
// with coefficient α = ħ²/(2mΔx²); the potential is sampled on the main
// diagonal at x = i·Δx:
//
//	Main[i]  =  2α + V(i·Δx)
//	Sub[i] = Super[i] = -α
//
// The missing neighbours beyond the first and last rows encode Dirichlet
// walls: the wavefunction is pinned to zero just outside the grid.
func NewHamiltonian(dim int, c Constants, v Potential) *Tridiagonal {
	alpha := c.HBar * c.HBar / (2 * c.Mass * c.Dx * c.Dx)
	h := NewTridiagonal(dim)
	for i := 0; i < dim; i++ {
		h.Main[i] = complex(2*alpha+v(float64(i)*c.Dx), 0)
		if i > 0 {
			h.Sub[i] = complex(-alpha, 0)
		}
		if i+1 < dim {
			h.Super[i] = complex(-alpha, 0)
		}
	}
	return h
}
