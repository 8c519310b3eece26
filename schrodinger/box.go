package schrodinger

import (
	"fmt"

	"qsim/quantum"
)

// BoxConfig describes a particle-in-a-box simulation: a 1D well of width L
// sampled at Points grid positions including both walls, stepped by Dt.
type BoxConfig struct {
	Points int
	L      float64
	Dt     float64
}

// Dx returns the grid spacing L/(Points-1).
func (c BoxConfig) Dx() float64 {
	return c.L / float64(c.Points-1)
}

// Interior returns the number of evolving grid points, excluding the two
// pinned wall samples.
func (c BoxConfig) Interior() int {
	return c.Points - 2
}

// ParticleInBox bundles a Crank–Nicolson stepper with the current
// wavefunction for a boxed 1D system.
type ParticleInBox struct {
	cfg BoxConfig
	v   Potential
	cn  *CrankNicolson
	psi *quantum.StateVector
}

// NewParticleInBox builds a simulation over the well described by cfg with
// the given potential and initial interior wavefunction. The seed length
// must equal cfg.Interior().
func NewParticleInBox(cfg BoxConfig, v Potential, seed *quantum.StateVector) (*ParticleInBox, error) {
	if cfg.Points < 3 {
		return nil, fmt.Errorf("schrodinger: box needs at least 3 grid points, got %d", cfg.Points)
	}
	if cfg.L <= 0 {
		return nil, fmt.Errorf("schrodinger: box width must be positive, got %v", cfg.L)
	}
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("schrodinger: time step must be positive, got %v", cfg.Dt)
	}
	if seed.Dim() != cfg.Interior() {
		return nil, fmt.Errorf("schrodinger: seed has %d points, box interior has %d", seed.Dim(), cfg.Interior())
	}
	consts := DefaultConstants(cfg.Dx())
	h := NewHamiltonian(cfg.Interior(), consts, v)
	return &ParticleInBox{
		cfg: cfg,
		v:   v,
		cn:  NewCrankNicolson(h, consts, cfg.Dt),
		psi: seed.Clone(),
	}, nil
}

// Config returns the simulation parameters.
func (p *ParticleInBox) Config() BoxConfig {
	return p.cfg
}

// Potential returns the potential the box was built with.
func (p *ParticleInBox) Potential() Potential {
	return p.v
}

// State returns the current interior wavefunction. The caller must not
// modify it.
func (p *ParticleInBox) State() *quantum.StateVector {
	return p.psi
}

// Evolve advances the simulation by n time steps.
func (p *ParticleInBox) Evolve(n int) {
	p.psi = p.cn.EvolveSteps(p.psi, n)
}

// Probabilities returns |ψ|²·Δx per interior point, the probability mass
// attributed to each grid cell.
func (p *ParticleInBox) Probabilities() []float64 {
	dx := p.cfg.Dx()
	probs := p.psi.Probabilities()
	for i := range probs {
		probs[i] *= dx
	}
	return probs
}
