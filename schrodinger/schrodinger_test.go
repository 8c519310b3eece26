package schrodinger

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsim/quantum"
)

func gridNorm(psi *quantum.StateVector, dx float64) float64 {
	sum := 0.0
	for _, a := range psi.Amplitudes {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum * dx
}

func TestHamiltonianFreeParticle(t *testing.T) {
	h := NewHamiltonian(3, Constants{HBar: 1, Mass: 1, Dx: 1}, Free)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, real(h.Main[i]), 1e-12, "main diagonal entry %d", i)
		assert.Zero(t, imag(h.Main[i]))
	}
	assert.InDelta(t, -0.5, real(h.Sub[1]), 1e-12)
	assert.InDelta(t, -0.5, real(h.Sub[2]), 1e-12)
	assert.InDelta(t, -0.5, real(h.Super[0]), 1e-12)
	assert.InDelta(t, -0.5, real(h.Super[1]), 1e-12)

	// Placeholder entries stay zero.
	assert.Zero(t, h.Sub[0])
	assert.Zero(t, h.Super[2])
}

func TestHamiltonianSamplesPotential(t *testing.T) {
	c := Constants{HBar: 1, Mass: 1, Dx: 0.5}
	h := NewHamiltonian(4, c, func(x float64) float64 { return x })

	alpha := 1 / (2 * c.Dx * c.Dx)
	for i := 0; i < 4; i++ {
		want := 2*alpha + float64(i)*c.Dx
		assert.InDelta(t, want, real(h.Main[i]), 1e-12, "main diagonal entry %d", i)
	}
}

func TestThomasRecoversKnownSolution(t *testing.T) {
	m := NewTridiagonal(4)
	for i := 0; i < 4; i++ {
		m.Main[i] = complex(4, 0.5)
		if i > 0 {
			m.Sub[i] = complex(-1, 0.2)
		}
		if i < 3 {
			m.Super[i] = complex(-1, -0.3)
		}
	}

	want := quantum.NewStateVector(4)
	want.Amplitudes = []quantum.Complex{1 + 2i, -0.5, 3 - 1i, 0.25 + 0.75i}

	got := m.SolveThomas(m.MulVec(want))
	for i := range want.Amplitudes {
		assert.InDelta(t, real(want.Amplitudes[i]), real(got.Amplitudes[i]), 1e-10, "entry %d", i)
		assert.InDelta(t, imag(want.Amplitudes[i]), imag(got.Amplitudes[i]), 1e-10, "entry %d", i)
	}
}

func TestMulVecBoundaries(t *testing.T) {
	m := NewTridiagonal(3)
	m.Main = []quantum.Complex{1, 2, 3}
	m.Sub = []quantum.Complex{0, 10, 20}
	m.Super = []quantum.Complex{100, 200, 0}

	x := quantum.NewStateVector(3)
	x.Amplitudes = []quantum.Complex{1, 1, 1}

	got := m.MulVec(x)
	assert.Equal(t, quantum.Complex(101), got.Amplitudes[0])
	assert.Equal(t, quantum.Complex(212), got.Amplitudes[1])
	assert.Equal(t, quantum.Complex(23), got.Amplitudes[2])
}

func TestCrankNicolsonPreservesNormThroughBarrier(t *testing.T) {
	cfg := BoxConfig{Points: 201, L: 1, Dt: 1e-4}
	seed := GaussianPacket(cfg.Interior(), cfg.Dx(), 0.25, 0.05, 10*math.Pi)
	box, err := NewParticleInBox(cfg, Barrier(0.45, 0.55, 3000), seed)
	require.NoError(t, err)

	for step := 0; step < 5; step++ {
		box.Evolve(100)
		assert.InDelta(t, 1.0, gridNorm(box.State(), cfg.Dx()), 1e-9,
			"grid norm after %d steps", (step+1)*100)
	}
}

func TestCrankNicolsonPreservesNormSoftCoulomb(t *testing.T) {
	cfg := BoxConfig{Points: 101, L: 10, Dt: 5e-3}
	seed := GaussianPacket(cfg.Interior(), cfg.Dx(), 5, 0.8, 2)
	box, err := NewParticleInBox(cfg, SoftCoulomb(1, 5, 0.5), seed)
	require.NoError(t, err)

	box.Evolve(400)
	assert.InDelta(t, 1.0, gridNorm(box.State(), cfg.Dx()), 1e-9)
}

func TestBoxEigenstateIsStationary(t *testing.T) {
	// The discrete sine mode is an exact eigenvector of the second-difference
	// stencil, so evolution only rotates its global phase.
	cfg := BoxConfig{Points: 50, L: 1, Dt: 1e-3}
	seed := BoxEigenstate(cfg.Interior(), cfg.Dx(), 1)
	box, err := NewParticleInBox(cfg, Free, seed)
	require.NoError(t, err)

	before := box.Probabilities()
	box.Evolve(50)
	after := box.Probabilities()

	for i := range before {
		assert.InDelta(t, before[i], after[i], 1e-9, "probability at point %d", i)
	}
}

func TestSeedsAreGridNormalized(t *testing.T) {
	const (
		dim = 120
		dx  = 0.05
	)

	assert.InDelta(t, 1.0, gridNorm(GaussianPacket(dim, dx, 3, 0.4, 4), dx), 1e-9)
	assert.InDelta(t, 1.0, gridNorm(BoxEigenstate(dim, dx, 2), dx), 1e-9)

	shells := []QuantumNumber{
		Shell2s, Shell2p, Shell3s, Shell3p, Shell3d,
		Shell4s, Shell4p, Shell4d, Shell4f,
	}
	for _, qn := range shells {
		psi, err := HydrogenOrbital(dim, dx, qn, 0.3, 0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, gridNorm(psi, dx), 1e-9, "shell n=%d l=%d", qn.N, qn.L)
	}
}

func TestHydrogenOrbitalRejectsInvalidShell(t *testing.T) {
	_, err := HydrogenOrbital(50, 0.1, QuantumNumber{N: 0, L: 0}, 0.3, 0)
	assert.Error(t, err)

	_, err = HydrogenOrbital(50, 0.1, QuantumNumber{N: 2, L: 2}, 0.3, 0)
	assert.Error(t, err)

	_, err = HydrogenOrbital(50, 0.1, Shell2s, 0, 0)
	assert.Error(t, err, "non-positive Bohr radius")
}

func TestHydrogenOrbitalDecaysFromNucleus(t *testing.T) {
	// On the unit box with a0=0.05 the 2s exponent spans ρ=0..10; the
	// probability must peak near the nucleus and vanish at the outer
	// wall, not pile up where the truncated exponential would diverge.
	const (
		dim = 94
		dx  = 1.0 / 95
	)
	psi, err := HydrogenOrbital(dim, dx, Shell2s, 0.05, 0)
	require.NoError(t, err)

	probs := psi.Probabilities()
	maxIdx := 0
	for i, p := range probs {
		if p > probs[maxIdx] {
			maxIdx = i
		}
	}
	assert.Less(t, maxIdx, dim/3, "probability peak should sit near the nucleus")
	assert.Less(t, probs[dim-1], 1e-6, "outer wall amplitude")
}

func TestHydrogenOrbitalNodeProduct(t *testing.T) {
	// The 3s radial function is exp(-ρ)·(1-r/(3a0))(1-r/(6a0)) with
	// ρ = r/(3a0). Normalization cancels in cross-ratios, so the grid
	// values must match the formula up to one global scale.
	const (
		dim = 60
		dx  = 0.01
		a0  = 0.05
	)
	expected := func(r float64) float64 {
		rho := r / (3 * a0)
		return math.Exp(-rho) * (1 - r/(3*a0)) * (1 - r/(6*a0))
	}

	psi, err := HydrogenOrbital(dim, dx, Shell3s, a0, 0)
	require.NoError(t, err)

	ref := 10 // away from both nodes
	refR := float64(ref+1) * dx
	for _, i := range []int{0, 5, 25, 40, 55} {
		r := float64(i+1) * dx
		got := real(psi.Amplitudes[i]) * expected(refR)
		want := real(psi.Amplitudes[ref]) * expected(r)
		assert.InDelta(t, want, got, 1e-6, "r=%g", r)
	}
}

func TestHydrogenOrbitalOddParity(t *testing.T) {
	// Odd-l orbitals flip sign across the atom center.
	const (
		dim = 99
		dx  = 0.01
		x0  = 0.5
	)
	psi, err := HydrogenOrbital(dim, dx, Shell2p, 0.05, x0)
	require.NoError(t, err)

	for i := 0; i < dim/2; i++ {
		mirror := dim - 1 - i
		assert.InDelta(t, -real(psi.Amplitudes[mirror]), real(psi.Amplitudes[i]), 1e-12,
			"i=%d mirror=%d", i, mirror)
	}
}

func TestGaussianPacketCarriesMomentum(t *testing.T) {
	psi := GaussianPacket(100, 0.01, 0.5, 0.1, 8*math.Pi)

	// Adjacent interior samples near the packet center differ in phase by
	// roughly k0·dx.
	mid := 49
	phaseStep := cmplx.Phase(psi.Amplitudes[mid+1]) - cmplx.Phase(psi.Amplitudes[mid])
	assert.InDelta(t, 8*math.Pi*0.01, phaseStep, 1e-6)
}

func TestGaussianPacketEnvelopeWidth(t *testing.T) {
	// |ψ(x0±σ)| / |ψ(x0)| = exp(-1/4) for an exp(-(x-x0)²/4σ²) envelope.
	const (
		dim   = 199
		dx    = 0.005
		x0    = 0.5
		sigma = 0.1
	)
	psi := GaussianPacket(dim, dx, x0, sigma, 0)

	center := 99 // x = 0.5
	offset := 20 // x = 0.5 + sigma
	ratio := real(psi.Amplitudes[center+offset]) / real(psi.Amplitudes[center])
	assert.InDelta(t, math.Exp(-0.25), ratio, 1e-9)
}

func TestNewParticleInBoxValidation(t *testing.T) {
	seed := BoxEigenstate(8, 0.1, 1)

	cases := []struct {
		name string
		cfg  BoxConfig
	}{
		{"too few points", BoxConfig{Points: 2, L: 1, Dt: 1e-3}},
		{"zero width", BoxConfig{Points: 10, L: 0, Dt: 1e-3}},
		{"zero step", BoxConfig{Points: 10, L: 1, Dt: 0}},
		{"seed mismatch", BoxConfig{Points: 12, L: 1, Dt: 1e-3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParticleInBox(tc.cfg, Free, seed)
			assert.Error(t, err)
		})
	}
}
