package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsim/qmath"
)

func TestGateLibraryUnitarity(t *testing.T) {
	gates := map[string]Matrix{
		"I":     Identity(2),
		"H":     Hadamard(),
		"X":     PauliX(),
		"Y":     PauliY(),
		"Z":     PauliZ(),
		"S":     SGate(false),
		"Sdg":   SGate(true),
		"T":     TGate(false),
		"Tdg":   TGate(true),
		"SWAP":  Swap(),
		"CNOT":  CNOT(),
		"CZ":    ControlledZ(),
		"CCX":   Toffoli(),
		"Rx":    RotationX(0.3),
		"Ry":    RotationY(-2.1),
		"Rz":    RotationZ(5.0),
		"P":     Phase(qmath.Pi / 3),
		"IQFT1": IQFT(1),
		"IQFT2": IQFT(2),
		"IQFT3": IQFT(3),
	}

	for name, g := range gates {
		assert.True(t, g.IsUnitary(1e-9), "%s should be unitary", name)
	}
}

func TestHadamardEntries(t *testing.T) {
	h := Hadamard()
	inv := 1 / qmath.Sqrt(2)
	assert.InDelta(t, inv, real(h[0][0]), 1e-15)
	assert.InDelta(t, inv, real(h[0][1]), 1e-15)
	assert.InDelta(t, inv, real(h[1][0]), 1e-15)
	assert.InDelta(t, -inv, real(h[1][1]), 1e-15)
}

func TestIQFTOnSingleQubitIsHadamard(t *testing.T) {
	// For one qubit the inverse Fourier transform reduces to H.
	iqft := IQFT(1)
	h := Hadamard()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, real(h[i][j]), real(iqft[i][j]), 1e-12)
			assert.InDelta(t, imag(h[i][j]), imag(iqft[i][j]), 1e-12)
		}
	}
}

func TestRotationFullTurn(t *testing.T) {
	// A 2π rotation is -I on a spin-half system.
	rx := RotationX(2 * qmath.Pi)
	assert.InDelta(t, -1, real(rx[0][0]), 1e-12)
	assert.InDelta(t, -1, real(rx[1][1]), 1e-12)
	assert.InDelta(t, 0, real(rx[0][1]), 1e-12)
	assert.InDelta(t, 0, imag(rx[0][1]), 1e-12)
}

func TestSGateSquaredIsZ(t *testing.T) {
	s2 := SGate(false).Mul(SGate(false))
	z := PauliZ()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, real(z[i][j]), real(s2[i][j]), 1e-15)
			assert.InDelta(t, imag(z[i][j]), imag(s2[i][j]), 1e-15)
		}
	}
}

func TestIdentityLeavesStateUntouched(t *testing.T) {
	op, err := NewOp(Identity(2), 1)
	require.NoError(t, err)

	in := NewBasisState(2, 0)
	in = MustOp(Hadamard(), 0).Apply(in)
	out := op.Apply(in)
	assert.Equal(t, in.Amplitudes, out.Amplitudes)
}
