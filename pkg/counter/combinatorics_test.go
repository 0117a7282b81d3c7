package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinomial(t *testing.T) {
	assert.Equal(t, uint64(1), Binomial(0, 0))
	assert.Equal(t, uint64(0), Binomial(2, 3))
	assert.Equal(t, uint64(10), Binomial(5, 2))
	assert.Equal(t, uint64(10), Binomial(5, 3))
	assert.Equal(t, uint64(184756), Binomial(20, 10))
	assert.Equal(t, uint64(4), Binomial(4, 3))
}

func TestChoose(t *testing.T) {
	for n := range uint64(2000) {
		assert.Equal(t, Binomial(n, 2), Choose2(n), "C(%d, 2)", n)
		assert.Equal(t, Binomial(n, 3), Choose3(n), "C(%d, 3)", n)
	}

	// Exact values whose unreduced products would overflow
	assert.Equal(t, uint64(12499999997500000000), Choose2(5000000000))
	assert.Equal(t, uint64(10666658666668000000), Choose3(4000000))
}
