package counter

import (
	"github.com/limaJavier/threemul/pkg/divisor"
	"github.com/limaJavier/threemul/pkg/index"
)

type subquadraticCounter struct{}

func (counter *subquadraticCounter) Count(sequence []uint64) uint64 {
	positionIndex := index.BuildPositionIndex(sequence)

	var count uint64
	if zeros, ok := positionIndex.Get(0); ok {
		count += countZeroProducts(len(sequence), zeros)
	}

	for _, value := range positionIndex.Values() {
		if value == 0 {
			continue
		}
		products, _ := positionIndex.Get(value)
		factors := divisor.Factorize(value)

		for _, largest := range divisor.LargestFactorCandidates(value, factors) {
			if _, ok := positionIndex.Get(largest); !ok {
				continue
			}
			quotient := value / largest
			for _, middle := range divisor.MiddleFactorCandidates(value, largest, factors) {
				smallest := quotient / middle
				if !present(positionIndex, middle, smallest) {
					continue
				}
				count += countTriple(positionIndex, products, largest, middle, smallest)
			}
		}
	}

	return count
}

func present(positionIndex index.PositionIndex, values ...uint64) bool {
	for _, value := range values {
		if _, ok := positionIndex.Get(value); !ok {
			return false
		}
	}
	return true
}

// Counts, over every product position p0, the ways to pick distinct positions after p0 holding largest, middle and
// smallest (largest >= middle >= smallest). Equal factors share one postings list, so positions are chosen without repetition.
func countTriple(positionIndex index.PositionIndex, products []int, largest, middle, smallest uint64) uint64 {
	var count uint64
	for _, position := range products {
		largestAfter := uint64(positionIndex.CountAfter(largest, position))
		switch {
		case largest == smallest:
			count += Choose3(largestAfter)
		case largest == middle:
			count += Choose2(largestAfter) * uint64(positionIndex.CountAfter(smallest, position))
		case middle == smallest:
			count += largestAfter * Choose2(uint64(positionIndex.CountAfter(middle, position)))
		default:
			count += largestAfter *
				uint64(positionIndex.CountAfter(middle, position)) *
				uint64(positionIndex.CountAfter(smallest, position))
		}
	}
	return count
}

// Counts quadruples whose product position holds zero: the three later positions must include at least one zero.
// For the zero at zeros[i], the positions after it split into zerosAfter zeros and nonZerosAfter non-zeros.
func countZeroProducts(length int, zeros []int) uint64 {
	var count uint64
	for i, position := range zeros {
		zerosAfter := uint64(len(zeros) - i - 1)
		nonZerosAfter := uint64(length-position-1) - zerosAfter
		count += zerosAfter*Choose2(nonZerosAfter) +
			Choose2(zerosAfter)*nonZerosAfter +
			Choose3(zerosAfter)
	}
	return count
}
