// Package dataset provides the named synthetic sequences used to benchmark and cross-check the counters,
// as well as sequences loaded from files.
package dataset

import (
	"fmt"
	"math"
	"slices"

	"github.com/limaJavier/threemul/pkg/divisor"
	"github.com/samber/lo"
)

const DefaultSize = 500000

// The number below 2^64 with the most three-factor decompositions
const MaxTriplesNumber uint64 = 17952249695732352000

var highlyDivisibleNumbers = []uint64{
	17952249695732352000,
	17820842462599176000,
	18053332182757872000,
	15334213281771384000,
	16082223685760232000,
	18020081695100284800,
}

type Dataset struct {
	Name     string
	Sequence []uint64
}

type Generator func(size int) []uint64

var generators = map[string]Generator{
	"very_small_numbers":      VerySmallNumbers,
	"very_big_numbers":        VeryBigNumbers,
	"small_unique_numbers":    SmallUniqueNumbers,
	"max_number":              MaxNumber,
	"max_numbers":             MaxNumbers,
	"random_numbers":          RandomNumbers,
	"random_unique_numbers":   RandomUniqueNumbers,
	"worst_subquadratic_case": WorstSubquadraticCase,
}

func Names() []string {
	return []string{
		"very_small_numbers",
		"very_big_numbers",
		"small_unique_numbers",
		"max_number",
		"max_numbers",
		"random_numbers",
		"random_unique_numbers",
		"worst_subquadratic_case",
	}
}

func Generate(name string, size int) (Dataset, error) {
	generator, ok := generators[name]
	if !ok {
		return Dataset{}, fmt.Errorf("unknown dataset \"%v\"", name)
	} else if size <= 0 {
		return Dataset{}, fmt.Errorf("dataset size must be positive: %v", size)
	}
	return Dataset{Name: name, Sequence: generator(size)}, nil
}

// Rejects datasets sharing a name, since results are grouped by it
func CheckUniqueNames(datasets []Dataset) error {
	duplicates := lo.FindDuplicatesBy(datasets, func(dataset Dataset) string { return dataset.Name })
	if len(duplicates) > 0 {
		return fmt.Errorf("dataset name \"%v\" is used more than once", duplicates[0].Name)
	}
	return nil
}

// Generates the named datasets (every known dataset if names is empty)
func GenerateAll(names []string, size int) ([]Dataset, error) {
	if len(names) == 0 {
		names = Names()
	}
	datasets := make([]Dataset, 0, len(names))
	for _, name := range names {
		dataset, err := Generate(name, size)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, dataset)
	}
	return datasets, nil
}

// Values cycle through 0..255
func VerySmallNumbers(size int) []uint64 {
	sequence := make([]uint64, size)
	for i := range sequence {
		sequence[i] = uint64(i % 256)
	}
	return sequence
}

// size, size-1, ..., 1
func SmallUniqueNumbers(size int) []uint64 {
	sequence := lo.RangeFrom(uint64(1), size)
	slices.Reverse(sequence)
	return sequence
}

// Pairs of values just below 2^64 followed by two descending runs of small values
func VeryBigNumbers(size int) []uint64 {
	tail := min(500, size/4)
	pairs := size/2 - tail
	sequence := make([]uint64, 0, size)
	if size%2 == 1 {
		sequence = append(sequence, math.MaxUint64)
	}
	for i := 1; i <= pairs; i++ {
		sequence = append(sequence, math.MaxUint64-uint64(i), math.MaxUint64-uint64(i))
	}
	for range 2 {
		for value := tail; value >= 1; value-- {
			sequence = append(sequence, uint64(value))
		}
	}
	return sequence
}

// MaxTriplesNumber followed by its divisors, repeated until size, in descending order
func MaxNumber(size int) []uint64 {
	divisors := divisor.AllDivisors(MaxTriplesNumber)
	sequence := make([]uint64, 0, size+len(divisors))
	sequence = append(sequence, MaxTriplesNumber)
	for len(sequence) < size {
		sequence = append(sequence, divisors...)
	}
	return descending(sequence[:size])
}

// Divisors of several highly divisible numbers in descending order
func MaxNumbers(size int) []uint64 {
	sequence := make([]uint64, 0, size)
	for len(sequence) <= size {
		for _, number := range highlyDivisibleNumbers {
			sequence = append(sequence, divisor.AllDivisors(number)...)
			if len(sequence) > size {
				break
			}
		}
	}
	return descending(sequence[:size])
}

// Products of earlier values with primes, in reverse generation order
func RandomNumbers(size int) []uint64 {
	primes := Primes(uint64(max(size/10, 100)))
	sequence := lo.RangeFrom(uint64(1), 999)
	i := 0
	for len(sequence) < size {
		length := len(sequence)
		for _, prime := range primes {
			value := sequence[i%length]
			i++
			if math.MaxUint64/value < prime {
				continue
			}
			sequence = append(sequence, value*prime)
		}
	}
	sequence = sequence[:size]
	slices.Reverse(sequence)
	return sequence
}

// Like RandomNumbers, but values are distinct and sorted in descending order.
// The result may hold slightly more than size values.
func RandomUniqueNumbers(size int) []uint64 {
	primes := Primes(uint64(max(size/100, 100)))
	sequence := lo.RangeFrom(uint64(1), 999)
	i := 0
	for len(sequence) < size {
		length := len(sequence)
		for _, prime := range primes {
			value := sequence[i%length]
			i++
			if math.MaxUint64/value < prime {
				continue
			}
			sequence = append(sequence, value*prime)
		}
		sequence = lo.Uniq(sequence)
		slices.Sort(sequence)
	}
	slices.Reverse(sequence)
	return sequence
}

// Distinct smooth numbers closed under multiplication by small primes, so that most divisors of every value are
// present. Values are in descending order; the result may hold slightly more than size values.
func WorstSubquadraticCase(size int) []uint64 {
	primes := Primes(1000)
	seen := make(map[uint64]bool, size)
	frontier := lo.RangeFrom(uint64(1), 9)
	for _, value := range frontier {
		seen[value] = true
	}

	available := 5
	for len(seen) < size {
		next := make([]uint64, 0, 1000)
		for _, value := range frontier {
			for _, prime := range primes[:available] {
				if math.MaxUint64/value < prime {
					continue
				}
				product := value * prime
				if seen[product] {
					continue
				}
				seen[product] = true
				next = append(next, product)
			}
			if len(seen) >= size {
				break
			}
		}
		frontier = next
		// Add a new prime when the frontier runs dry
		if len(frontier) < 10 {
			frontier = append(frontier, lo.RangeFrom(uint64(1), 9)...)
			available = min(available+1, len(primes))
		}
	}

	return descending(lo.Keys(seen))
}

func descending(sequence []uint64) []uint64 {
	slices.Sort(sequence)
	slices.Reverse(sequence)
	return sequence
}
