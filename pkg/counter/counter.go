// Package counter counts the quadruples (p0, p1, p2, p3) of a sequence such that p0 is smaller than the other
// three positions and sequence[p0] = sequence[p1] * sequence[p2] * sequence[p3].
//
// Every counter is a pure function of its input and may be called concurrently on independent sequences.
// Counts are accumulated modulo 2^64.
package counter

type Counter interface {
	Count(sequence []uint64) uint64
}

type Algorithm string

const (
	Quadratic    Algorithm = "quadratic"
	Subquadratic Algorithm = "subquadratic"
	BruteForce   Algorithm = "bruteforce"
)

var counters = map[Algorithm]func() Counter{
	Quadratic:    NewQuadraticCounter,
	Subquadratic: NewSubquadraticCounter,
	BruteForce:   NewBruteForceCounter,
}

func Algorithms() []Algorithm {
	return []Algorithm{Quadratic, Subquadratic, BruteForce}
}

// Returns the counter implementing algorithm, or false if the name is unknown
func New(algorithm Algorithm) (Counter, bool) {
	constructor, ok := counters[algorithm]
	if !ok {
		return nil, false
	}
	return constructor(), true
}

func NewQuadraticCounter() Counter {
	return &quadraticCounter{}
}

func NewSubquadraticCounter() Counter {
	return &subquadraticCounter{}
}

// The brute-force counter inspects every combination of four positions; it is meant for small inputs only
func NewBruteForceCounter() Counter {
	return &bruteForceCounter{}
}

func CountQuadratic(sequence []uint64) uint64 {
	return NewQuadraticCounter().Count(sequence)
}

func CountSubquadratic(sequence []uint64) uint64 {
	return NewSubquadraticCounter().Count(sequence)
}
