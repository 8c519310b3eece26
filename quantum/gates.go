package quantum

import "qsim/qmath"

// Named unitary gate matrices. The multi-qubit gates use a control-first
// convention: when an Op binds the matrix to a target list, the control
// qubit(s) come first and the acted-on qubit last, matching the local bit
// ordering of the gate engine (local bit b ↔ target b).

// Hadamard returns H = (1/√2)·[[1,1],[1,-1]].
func Hadamard() Matrix {
	h := complex(1/qmath.Sqrt(2), 0)
	return Matrix{
		{h, h},
		{h, -h},
	}
}

// PauliX returns the NOT gate.
func PauliX() Matrix {
	return Matrix{
		{0, 1},
		{1, 0},
	}
}

// PauliY returns the Pauli-Y gate.
func PauliY() Matrix {
	return Matrix{
		{0, -1i},
		{1i, 0},
	}
}

// PauliZ returns the Pauli-Z gate.
func PauliZ() Matrix {
	return Matrix{
		{1, 0},
		{0, -1},
	}
}

// SGate returns the phase gate diag(1, i), or its adjoint diag(1, -i).
func SGate(dagger bool) Matrix {
	phase := Complex(1i)
	if dagger {
		phase = -1i
	}
	return Matrix{
		{1, 0},
		{0, phase},
	}
}

// TGate returns diag(1, e^{iπ/4}), or its adjoint.
func TGate(dagger bool) Matrix {
	angle := qmath.Pi / 4
	if dagger {
		angle = -angle
	}
	return Matrix{
		{1, 0},
		{0, complex(qmath.Cos(angle), qmath.Sin(angle))},
	}
}

// RotationX returns Rx(θ) = [[cos θ/2, -i·sin θ/2], [-i·sin θ/2, cos θ/2]].
func RotationX(theta float64) Matrix {
	c := complex(qmath.Cos(theta/2), 0)
	js := complex(0, -qmath.Sin(theta/2))
	return Matrix{
		{c, js},
		{js, c},
	}
}

// RotationY returns Ry(θ) = [[cos θ/2, -sin θ/2], [sin θ/2, cos θ/2]].
func RotationY(theta float64) Matrix {
	c := complex(qmath.Cos(theta/2), 0)
	s := complex(qmath.Sin(theta/2), 0)
	return Matrix{
		{c, -s},
		{s, c},
	}
}

// RotationZ returns Rz(θ) = diag(e^{-iθ/2}, e^{iθ/2}).
func RotationZ(theta float64) Matrix {
	return Matrix{
		{complex(qmath.Cos(theta/2), -qmath.Sin(theta/2)), 0},
		{0, complex(qmath.Cos(theta/2), qmath.Sin(theta/2))},
	}
}

// Phase returns the phase-shift gate diag(1, e^{iθ}).
func Phase(theta float64) Matrix {
	return Matrix{
		{1, 0},
		{0, complex(qmath.Cos(theta), qmath.Sin(theta))},
	}
}

// Swap returns the two-qubit SWAP gate.
func Swap() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
}

// CNOT returns the controlled-NOT gate. Bound as (control, target): the
// target bit flips on basis states where the control bit is set.
func CNOT() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}
}

// ControlledZ returns the controlled-Z gate.
func ControlledZ() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	}
}

// Toffoli returns the doubly-controlled NOT gate. Bound as
// (control, control, target): local indices 3 (011) and 7 (111) swap, so
// the third bound qubit flips when both controls are set.
func Toffoli() Matrix {
	m := Identity(8)
	m[3][3], m[7][7] = 0, 0
	m[3][7], m[7][3] = 1, 1
	return m
}

// IQFT returns the dense inverse quantum Fourier transform matrix for n
// qubits: U[j][k] = (1/√N)·exp(-2πi·jk/N) with N = 2^n.
func IQFT(n int) Matrix {
	dim := qmath.Pow2(n)
	invSqrtDim := 1 / qmath.Sqrt(float64(dim))

	m := NewMatrix(dim)
	for j := 0; j < dim; j++ {
		for k := 0; k < dim; k++ {
			angle := 2 * qmath.Pi * float64(j*k) / float64(dim)
			m[j][k] = complex(invSqrtDim*qmath.Cos(angle), -invSqrtDim*qmath.Sin(angle))
		}
	}
	return m
}
