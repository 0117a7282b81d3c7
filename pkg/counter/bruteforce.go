package counter

import (
	"math"
	"math/bits"
)

type bruteForceCounter struct{}

// Slot 0 of a combination is the product position, slots 1 to 3 hold the factor positions in increasing order
func (counter *bruteForceCounter) Count(sequence []uint64) uint64 {
	var count uint64
	constrainedCombinations(
		[]func(combination []uint64) bool{
			func(combination []uint64) bool {
				return productConstraint(sequence, combination)
			},
		},
		uint64(len(sequence)),
		0,
		[]uint64{math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64},
		func([]uint64) { count++ },
	)
	return count
}

// Checks whether the factors assigned so far can still multiply to the value at the product position.
// Unassigned slots hold math.MaxUint64.
func productConstraint(sequence []uint64, combination []uint64) bool {
	target := sequence[combination[0]]
	product := uint64(1)
	assigned, hasZero, overflow := 0, false, false
	for _, position := range combination[1:] {
		if position == math.MaxUint64 {
			break
		}
		assigned++
		value := sequence[position]
		if value == 0 {
			hasZero = true
			continue
		}
		hi, lo := bits.Mul64(product, value)
		if hi != 0 {
			overflow = true
		}
		product = lo
	}

	complete := assigned == len(combination)-1
	if hasZero {
		return target == 0
	} else if overflow {
		// A later zero factor can still complete a zero product
		return !complete && target == 0
	} else if complete {
		return product == target
	}
	return target == 0 || target%product == 0
}

// Assigns increasing positions below domain to the slots of combination starting at currentSlot, and visits every
// complete combination that holds the constraints. Constraints are evaluated after each slot assignment, so a
// violated constraint prunes the whole branch.
func constrainedCombinations(
	constraints []func(combination []uint64) bool,
	domain uint64,
	currentSlot int,
	combination []uint64,
	visit func(combination []uint64)) {

	if currentSlot >= len(combination) {
		visit(combination)
		return
	}

	start := uint64(0)
	if currentSlot > 0 {
		start = combination[currentSlot-1] + 1
	}

	for i := start; i < domain; i++ {
		combination[currentSlot] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(combination) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		constrainedCombinations(constraints, domain, currentSlot+1, combination, visit)
	}

	combination[currentSlot] = math.MaxUint64
}
