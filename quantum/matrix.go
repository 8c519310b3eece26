package quantum

import "math/cmplx"

// Matrix is a dense square matrix of complex entries, used for gate
// unitaries. Gate dimensions stay small (2^k for k up to a few qubits), so
// dense storage is fine here; large sparse operators live elsewhere.
type Matrix [][]Complex

// NewMatrix returns a zero dim×dim matrix.
func NewMatrix(dim int) Matrix {
	m := make(Matrix, dim)
	for i := range m {
		m[i] = make([]Complex, dim)
	}
	return m
}

// Identity returns the dim×dim identity matrix.
func Identity(dim int) Matrix {
	m := NewMatrix(dim)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Dim returns the number of rows.
func (m Matrix) Dim() int {
	return len(m)
}

// IsSquare reports whether every row has the same length as the row count.
func (m Matrix) IsSquare() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return len(m) > 0
}

// MulVec returns the matrix-vector product m·v.
func (m Matrix) MulVec(v []Complex) []Complex {
	result := make([]Complex, len(m))
	for i := range m {
		var sum Complex
		for j, x := range v {
			sum += m[i][j] * x
		}
		result[i] = sum
	}
	return result
}

// Mul returns the matrix product m·other.
func (m Matrix) Mul(other Matrix) Matrix {
	dim := len(m)
	result := NewMatrix(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var sum Complex
			for k := 0; k < dim; k++ {
				sum += m[i][k] * other[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// Dagger returns the conjugate transpose m†.
func (m Matrix) Dagger() Matrix {
	dim := len(m)
	result := NewMatrix(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			result[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return result
}

// IsUnitary reports whether m·m† equals the identity within tol, checked
// component-wise: diagonal entries against 1+0i, off-diagonal against 0.
func (m Matrix) IsUnitary(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	product := m.Mul(m.Dagger())
	for i := range product {
		for j, p := range product[i] {
			want := Complex(0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(p-want) > tol {
				return false
			}
		}
	}
	return true
}
