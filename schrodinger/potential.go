package schrodinger

import "qsim/qmath"

// Free is the zero potential.
func Free(x float64) float64 {
	return 0
}

// SoftCoulomb returns a regularized attractive Coulomb potential centered
// at x0 with charge z and softening length a:
//
//	V(x) = -z / √((x-x0)² + a²)
//
// The softening removes the singularity at the center so the potential can
// be sampled on a grid.
func SoftCoulomb(z, x0, a float64) Potential {
	return func(x float64) float64 {
		d := x - x0
		return -z / qmath.Sqrt(d*d+a*a)
	}
}

// Barrier returns a rectangular potential step of the given height on
// [from, to) and zero elsewhere.
func Barrier(from, to, height float64) Potential {
	return func(x float64) float64 {
		if x >= from && x < to {
			return height
		}
		return 0
	}
}

// Harmonic returns a harmonic oscillator well ½mω²(x-x0)² centered at x0.
func Harmonic(mass, omega, x0 float64) Potential {
	return func(x float64) float64 {
		d := x - x0
		return 0.5 * mass * omega * omega * d * d
	}
}
