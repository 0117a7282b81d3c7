package divisor

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveIsPrime(value uint64) bool {
	if value < 2 {
		return false
	}
	for d := uint64(2); d*d <= value; d++ {
		if value%d == 0 {
			return false
		}
	}
	return true
}

func product(factors []PrimePower) uint64 {
	result := uint64(1)
	for _, factor := range factors {
		for range factor.Exponent {
			result *= factor.Prime
		}
	}
	return result
}

func TestIsPrime(t *testing.T) {
	for value := uint64(0); value < 20000; value++ {
		assert.Equal(t, naiveIsPrime(value), IsPrime(value), "value %d", value)
	}

	assert.True(t, IsPrime(18446744073709551557))
	assert.True(t, IsPrime(4294967291))
	assert.False(t, IsPrime(math.MaxUint64))
	assert.False(t, IsPrime(4294967291*4294967279))
	// Strong pseudoprime to every prime base up to 23
	assert.False(t, IsPrime(3825123056546413051))
}

func TestFactorize(t *testing.T) {
	t.Run("Known factorizations", func(t *testing.T) {
		scenarios := map[uint64][]PrimePower{
			0:                       {},
			1:                       {},
			2:                       {{2, 1}},
			360:                     {{2, 3}, {3, 2}, {5, 1}},
			math.MaxUint64:          {{3, 1}, {5, 1}, {17, 1}, {257, 1}, {641, 1}, {65537, 1}, {6700417, 1}},
			1 << 63:                 {{2, 63}},
			highlyDivisible:         {{2, 10}, {3, 4}, {5, 3}, {7, 2}, {11, 1}, {13, 1}, {17, 1}, {19, 1}, {23, 1}, {29, 1}, {31, 1}, {37, 1}},
			4294967291 * 4294967279: {{4294967279, 1}, {4294967291, 1}},
			18446744073709551557:    {{18446744073709551557, 1}},
			1000003 * 1000003:       {{1000003, 2}}, // prime square above the trial division limit
		}

		for value, expected := range scenarios {
			//** Act
			factors := Factorize(value)

			//** Assert
			if len(expected) == 0 {
				assert.Empty(t, factors, "value %d", value)
				continue
			}
			assert.Equal(t, expected, factors, "value %d", value)
		}
	})

	t.Run("Random values", func(t *testing.T) {
		for range 200 {
			//** Arrange
			value := rand.Uint64() | 1

			//** Act
			factors := Factorize(value)

			//** Assert
			require.Equal(t, value, product(factors))
			for i, factor := range factors {
				assert.True(t, IsPrime(factor.Prime), "factor %d of %d", factor.Prime, value)
				if i > 0 {
					assert.Less(t, factors[i-1].Prime, factor.Prime)
				}
			}
		}
	})
}
