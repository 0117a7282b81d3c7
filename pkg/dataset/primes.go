package dataset

// Returns every prime below limit, sieving odd numbers only
func Primes(limit uint64) []uint64 {
	if limit <= 2 {
		return nil
	}
	composite := make([]bool, limit/2)
	primes := []uint64{2}
	for i := uint64(3); i < limit; i += 2 {
		if composite[i/2] {
			continue
		}
		primes = append(primes, i)
		for multiple := i * i; multiple < limit; multiple += 2 * i {
			composite[multiple/2] = true
		}
	}
	return primes
}
