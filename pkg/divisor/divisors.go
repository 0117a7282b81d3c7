package divisor

import (
	"math"
	"slices"
)

// Unordered factorization of a value into three factors, stored as (largest, middle, smallest)
type Triple [3]uint64

// Returns every divisor of value in ascending order. Zero has no finite divisor set, so it yields nil.
func AllDivisors(value uint64) []uint64 {
	if value == 0 {
		return nil
	}
	divisors := combineDivisors(Factorize(value), math.MaxUint64)
	slices.Sort(divisors)
	return divisors
}

// Returns the divisors of value that can be the largest factor of a triple, i.e. those in [ceil(cbrt(value)), value].
// Only their complements (at most value / ceil(cbrt(value))) are generated, which keeps the full divisor set from being materialized.
func LargestFactorCandidates(value uint64, factors []PrimePower) []uint64 {
	if value == 0 {
		return nil
	}
	limit := value / icbrtCeil(value)
	candidates := combineDivisors(factors, limit)
	for i, complement := range candidates {
		candidates[i] = value / complement
	}
	return candidates
}

// Returns every middle factor d2 of a triple whose largest factor is largest: d2 divides value/largest,
// d2 <= largest and d2 >= value/(largest*d2).
func MiddleFactorCandidates(value, largest uint64, factors []PrimePower) []uint64 {
	if value == 0 || largest == 0 || value%largest != 0 {
		return nil
	}
	quotient := value / largest

	// The smallest factor d3 = quotient/d2 lies in [ceil(quotient/largest), floor(sqrt(quotient))]
	lower := ceilDiv(quotient, largest)
	upper := isqrt(quotient)
	if lower > upper {
		return nil
	}

	// Drop the prime powers already consumed by the largest factor
	remaining := make([]PrimePower, 0, len(factors))
	for _, factor := range factors {
		exponent := factor.Exponent
		for consumed := largest; exponent > 0 && consumed%factor.Prime == 0; consumed /= factor.Prime {
			exponent--
		}
		if exponent > 0 {
			remaining = append(remaining, PrimePower{Prime: factor.Prime, Exponent: exponent})
		}
	}

	smallest := combineDivisors(remaining, upper)
	middles := make([]uint64, 0, len(smallest))
	for _, divisor := range smallest {
		if divisor >= lower {
			middles = append(middles, quotient/divisor)
		}
	}
	return middles
}

// Returns every unordered three-factor decomposition of value exactly once
func Triples(value uint64) []Triple {
	if value == 0 {
		return nil
	}
	factors := Factorize(value)
	triples := make([]Triple, 0)
	for _, largest := range LargestFactorCandidates(value, factors) {
		quotient := value / largest
		for _, middle := range MiddleFactorCandidates(value, largest, factors) {
			triples = append(triples, Triple{largest, middle, quotient / middle})
		}
	}
	return triples
}

// Returns the number of unordered three-factor decompositions of value
func CountFactorTriples(value uint64) int {
	if value == 0 {
		return 0
	}
	count := 0
	factors := Factorize(value)
	for _, largest := range LargestFactorCandidates(value, factors) {
		count += len(MiddleFactorCandidates(value, largest, factors))
	}
	return count
}

// Extends the divisor list prime power by prime power, keeping only partial products not above limit.
// Every product divides the factored value, so none of them overflows.
func combineDivisors(factors []PrimePower, limit uint64) []uint64 {
	divisors := []uint64{1}
	for _, factor := range factors {
		size := len(divisors)
		power := uint64(1)
		for range factor.Exponent {
			power *= factor.Prime
			for i := range size {
				if product := divisors[i] * power; product <= limit {
					divisors = append(divisors, product)
				}
			}
		}
	}
	return divisors
}
