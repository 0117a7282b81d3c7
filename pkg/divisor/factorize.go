package divisor

import (
	"math/bits"
	"slices"
)

type PrimePower struct {
	Prime    uint64
	Exponent uint64
}

// Bases that make Miller-Rabin deterministic for every 64-bit integer
var millerRabinBases = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

const trialDivisionLimit = 1 << 10

// Returns the prime factorization of value ordered by ascending prime. Values 0 and 1 have no factors.
func Factorize(value uint64) []PrimePower {
	if value < 2 {
		return nil
	}

	exponents := make(map[uint64]uint64)

	//** Strip small factors by trial division
	for value%2 == 0 {
		exponents[2]++
		value /= 2
	}
	for p := uint64(3); p < trialDivisionLimit && p*p <= value; p += 2 {
		for value%p == 0 {
			exponents[p]++
			value /= p
		}
	}

	//** Split the remaining cofactor with Pollard's rho
	if value > 1 {
		splitFactor(value, exponents)
	}

	factors := make([]PrimePower, 0, len(exponents))
	for prime, exponent := range exponents {
		factors = append(factors, PrimePower{Prime: prime, Exponent: exponent})
	}
	slices.SortFunc(factors, func(a, b PrimePower) int {
		if a.Prime < b.Prime {
			return -1
		} else if a.Prime > b.Prime {
			return 1
		}
		return 0
	})
	return factors
}

func splitFactor(value uint64, exponents map[uint64]uint64) {
	if value == 1 {
		return
	}
	if IsPrime(value) {
		exponents[value]++
		return
	}
	divisor := pollardRho(value)
	splitFactor(divisor, exponents)
	splitFactor(value/divisor, exponents)
}

// Checks whether value is prime. The answer is exact for every 64-bit integer.
func IsPrime(value uint64) bool {
	if value < 2 {
		return false
	}
	for _, base := range millerRabinBases {
		if value == base {
			return true
		}
		if value%base == 0 {
			return false
		}
	}

	d := value - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, base := range millerRabinBases {
		x := powMod(base, d, value)
		if x == 1 || x == value-1 {
			continue
		}
		composite := true
		for range s - 1 {
			x = mulMod(x, x, value)
			if x == value-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

const rhoBatch = 128

// Returns a non-trivial divisor of the odd composite value.
// Differences are multiplied together in batches so that only one gcd is taken per batch.
func pollardRho(value uint64) uint64 {
	if value%2 == 0 {
		return 2
	}
	distance := func(a, b uint64) uint64 {
		if a > b {
			return a - b
		}
		return b - a
	}
	for c := uint64(1); ; c++ {
		step := func(x uint64) uint64 {
			return addMod(mulMod(x, x, value), c, value)
		}
		x, y, d := uint64(2), uint64(2), uint64(1)
		for d == 1 {
			savedX, savedY := x, y
			accumulated := uint64(1)
			for range rhoBatch {
				x = step(x)
				y = step(step(y))
				accumulated = mulMod(accumulated, distance(x, y), value)
			}
			d = gcd(accumulated, value)
			if d == value {
				// The batch overshot; replay it one step at a time
				x, y = savedX, savedY
				for {
					x = step(x)
					y = step(step(y))
					if d = gcd(distance(x, y), value); d != 1 {
						break
					}
				}
			}
		}
		// d == value means the cycle closed without a split; retry with another constant
		if d != value {
			return d
		}
	}
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a%m, b%m, 0)
	if carry != 0 || sum >= m {
		sum -= m
	}
	return sum
}

func powMod(base, exponent, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exponent > 0 {
		if exponent&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exponent >>= 1
	}
	return result
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
