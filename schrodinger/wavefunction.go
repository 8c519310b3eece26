package schrodinger

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"qsim/qmath"
	"qsim/quantum"
)

const (
	// Taylor-series depths for the seed envelopes. The packet envelope
	// decays within a few σ so 20 terms suffice; the orbital exponentials
	// reach larger arguments and need the deeper expansion.
	packetExpTerms  = 20
	orbitalExpTerms = 30
)

// interiorGrid returns the dim interior sample positions x = Δx … dim·Δx.
// Grid index i maps to position (i+1)·Δx; the Dirichlet walls at 0 and
// (dim+1)·Δx are not represented.
func interiorGrid(dim int, dx float64) []float64 {
	xs := make([]float64, dim)
	floats.Span(xs, dx, float64(dim)*dx)
	return xs
}

// GaussianPacket seeds a normalized Gaussian wave packet over dim interior
// points: envelope exp(-(x-x0)²/4σ²) carrying a plane wave of momentum k0.
func GaussianPacket(dim int, dx, x0, sigma, k0 float64) *quantum.StateVector {
	psi := quantum.NewStateVector(dim)
	for i, x := range interiorGrid(dim, dx) {
		d := x - x0
		envelope := qmath.ExpTaylor(-d*d/(4*sigma*sigma), packetExpTerms)
		phase := k0 * x
		psi.Amplitudes[i] = complex(envelope*qmath.Cos(phase), envelope*qmath.Sin(phase))
	}
	psi.NormalizeGrid(dx)
	return psi
}

// BoxEigenstate seeds the n-th stationary state of the infinite square
// well of width L = (dim+1)·Δx: ψ_n(x) = sin(nπx/L), normalized on the
// grid. n starts at 1 for the ground state.
func BoxEigenstate(dim int, dx float64, n int) *quantum.StateVector {
	if n < 1 {
		panic(fmt.Sprintf("schrodinger: box eigenstate index %d, want >= 1", n))
	}
	length := float64(dim+1) * dx
	psi := quantum.NewStateVector(dim)
	for i, x := range interiorGrid(dim, dx) {
		psi.Amplitudes[i] = complex(qmath.Sin(float64(n)*qmath.Pi*x/length), 0)
	}
	psi.NormalizeGrid(dx)
	return psi
}

// QuantumNumber identifies a hydrogen shell by principal number N and
// orbital number L, with 0 <= L < N.
type QuantumNumber struct {
	N int
	L int
}

// Named shells.
var (
	Shell2s = QuantumNumber{N: 2, L: 0}
	Shell2p = QuantumNumber{N: 2, L: 1}
	Shell3s = QuantumNumber{N: 3, L: 0}
	Shell3p = QuantumNumber{N: 3, L: 1}
	Shell3d = QuantumNumber{N: 3, L: 2}
	Shell4s = QuantumNumber{N: 4, L: 0}
	Shell4p = QuantumNumber{N: 4, L: 1}
	Shell4d = QuantumNumber{N: 4, L: 2}
	Shell4f = QuantumNumber{N: 4, L: 3}
)

// HydrogenOrbital seeds the radial part of a hydrogen-like eigenstate over
// dim interior points, for an atom centered at x0 with effective Bohr
// radius a0. With r = |x-x0| and ρ = r/(n·a0) the amplitude is
//
//	ψ(x) = exp(-ρ) · ρ^l · Π_{k=1}^{n-l-1} (1 - r/(k·n·a0))
//
// a simplified Laguerre-style node product, sign-flipped left of the
// center for odd l. The result is grid-normalized. a0 must keep ρ modest
// across the grid, since the exponential is a truncated series.
func HydrogenOrbital(dim int, dx float64, qn QuantumNumber, a0, x0 float64) (*quantum.StateVector, error) {
	if qn.N < 1 || qn.L < 0 || qn.L >= qn.N {
		return nil, fmt.Errorf("schrodinger: invalid shell n=%d l=%d, want 0 <= l < n", qn.N, qn.L)
	}
	if a0 <= 0 {
		return nil, fmt.Errorf("schrodinger: Bohr radius must be positive, got %v", a0)
	}

	na0 := float64(qn.N) * a0
	psi := quantum.NewStateVector(dim)
	for i, x := range interiorGrid(dim, dx) {
		r := qmath.Abs(x - x0)
		rho := r / na0

		value := qmath.ExpTaylor(-rho, orbitalExpTerms)
		for k := 0; k < qn.L; k++ {
			value *= rho
		}
		for k := 1; k <= qn.N-qn.L-1; k++ {
			value *= 1 - r/(float64(k)*na0)
		}
		if qn.L%2 == 1 && x < x0 {
			value = -value
		}
		psi.Amplitudes[i] = complex(value, 0)
	}
	psi.NormalizeGrid(dx)
	return psi, nil
}
