package divisor

import (
	"math"
	"math/bits"
)

// Returns floor(sqrt(value)). The floating-point estimate is corrected with exact integer checks.
func isqrt(value uint64) uint64 {
	root := uint64(math.Sqrt(float64(value)))
	for root > 0 && root > value/root {
		root--
	}
	for root+1 <= value/(root+1) {
		root++
	}
	return root
}

// Returns floor(cbrt(value)). The floating-point estimate is corrected with exact integer checks.
func icbrt(value uint64) uint64 {
	root := uint64(math.Cbrt(float64(value)))
	for root > 0 && !cubeAtMost(root, value) {
		root--
	}
	for cubeAtMost(root+1, value) {
		root++
	}
	return root
}

// Returns ceil(cbrt(value))
func icbrtCeil(value uint64) uint64 {
	root := icbrt(value)
	if cubeAtMost(root, value) && root*root*root == value {
		return root
	}
	return root + 1
}

// Checks whether root^3 <= value without overflowing
func cubeAtMost(root, value uint64) bool {
	hi, square := bits.Mul64(root, root)
	if hi != 0 {
		return false
	}
	hi, cube := bits.Mul64(square, root)
	return hi == 0 && cube <= value
}

// Returns ceil(a / b) for b > 0
func ceilDiv(a, b uint64) uint64 {
	quotient := a / b
	if a%b != 0 {
		quotient++
	}
	return quotient
}
