package counter

import "math"

type quadraticCounter struct{}

// Single pass keeping, for every ratio r, how many earlier pairs (j, i') with j < i' satisfy sequence[j] = r * sequence[i'].
// At position i each later k looks up the ratio sequence[i] * sequence[k], which completes quadruples (j, i', i, k).
func (counter *quadraticCounter) Count(sequence []uint64) uint64 {
	n := len(sequence)
	pendingRatios := map[uint64]uint64{0: 0}
	var count, zeros uint64

	for i, current := range sequence {
		//** Query: pairs built from positions before i
		limit := uint64(math.MaxUint64) / max(1, current)
		for _, later := range sequence[i+1:] {
			if later > limit {
				continue // current * later overflows, so it cannot equal any stored value
			}
			count += pendingRatios[current*later]
		}

		//** Zero shortcut: an earlier zero as product with this zero as smallest factor position
		if current == 0 {
			count += zeros * Choose2(uint64(n-i-1))
			zeros++
			continue
		}

		//** Update: pair every earlier multiple with the current position
		for _, earlier := range sequence[:i] {
			if earlier%current == 0 {
				pendingRatios[earlier/current]++
			}
		}
	}

	return count
}
