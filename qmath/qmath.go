// Package qmath provides the elementary math helpers used to build gate
// matrices and seed wavefunctions. Everything here is evaluated with plain
// arithmetic (no math-library dispatch), so results are bit-reproducible
// across platforms.
package qmath

// Pi in double precision.
const Pi = 3.141592653589793238462643383279502884

// Pow2 returns 2^n as an int. Defined for 0 <= n < 63; no overflow check,
// which bounds practical qubit counts to the word size.
func Pow2(n int) int {
	return 1 << n
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns the exponent k such that x == 2^k. The result is only
// meaningful when IsPowerOfTwo(x) holds.
func Log2(x int) int {
	k := 0
	for x > 1 {
		x >>= 1
		k++
	}
	return k
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt computes the square root via Newton–Raphson iteration starting from
// x itself, stopping when two successive iterates compare bit-equal.
// Returns NaN for negative input; 0 and +Inf are returned unchanged.
func Sqrt(x float64) float64 {
	if x < 0 {
		return nan()
	}
	if x == 0 || isInf(x) {
		return x
	}
	curr, prev := x, 0.0
	for curr != prev {
		curr, prev = 0.5*(curr+x/curr), curr
	}
	return curr
}

// ExpTaylor evaluates the truncated Maclaurin series of e^x with the given
// number of terms (term n is term n−1 · x/n). No range reduction is
// performed: accuracy degrades for large |x|, so callers must keep the
// argument in a range where the truncated series converges usefully.
func ExpTaylor(x float64, terms int) float64 {
	sum := 1.0
	term := 1.0
	for n := 1; n <= terms; n++ {
		term *= x / float64(n)
		sum += term
	}
	return sum
}

// sinPoly approximates sin(x) around 0, accurate for |x| <= Pi/4.
func sinPoly(x float64) float64 {
	x2 := x * x
	result := x
	term := x
	term *= -x2 / 6.0 // -x^3/3!
	result += term
	term *= -x2 / 20.0 // +x^5/5!
	result += term
	term *= -x2 / 42.0 // -x^7/7!
	result += term
	term *= -x2 / 72.0 // +x^9/9!
	result += term
	term *= -x2 / 110.0 // -x^11/11!
	result += term
	return result
}

// cosPoly approximates cos(x) around 0, accurate for |x| <= Pi/4.
func cosPoly(x float64) float64 {
	x2 := x * x
	result := 1.0
	term := -x2 / 2.0 // -x^2/2!
	result += term
	term *= -x2 / 12.0 // +x^4/4!
	result += term
	term *= -x2 / 30.0 // -x^6/6!
	result += term
	term *= -x2 / 56.0 // +x^8/8!
	result += term
	term *= -x2 / 90.0 // -x^10/10!
	result += term
	term *= -x2 / 132.0 // +x^12/12!
	result += term
	return result
}

func floorInt(x float64) int {
	i := int(x)
	if x < float64(i) {
		return i - 1
	}
	return i
}

// reduceQuadrant maps x to k·(Pi/2) + xr with xr in [-Pi/4, Pi/4] and
// returns (xr, k mod 4).
func reduceQuadrant(x float64) (float64, int) {
	k := floorInt((x + Pi/4.0) / (Pi / 2.0))
	xr := x - float64(k)*(Pi/2.0)
	return xr, k & 3
}

// Sin computes sine with quadrant-aware range reduction.
func Sin(x float64) float64 {
	xr, q := reduceQuadrant(x)
	switch q {
	case 0:
		return sinPoly(xr)
	case 1:
		return cosPoly(xr)
	case 2:
		return -sinPoly(xr)
	default:
		return -cosPoly(xr)
	}
}

// Cos computes cosine with quadrant-aware range reduction.
func Cos(x float64) float64 {
	xr, q := reduceQuadrant(x)
	switch q {
	case 0:
		return cosPoly(xr)
	case 1:
		return -sinPoly(xr)
	case 2:
		return -cosPoly(xr)
	default:
		return sinPoly(xr)
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}

func isInf(x float64) bool {
	return x > 1.797693134862315708145274237317043567981e308
}
