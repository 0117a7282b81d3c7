package counter

// Returns C(n, 2) modulo 2^64. The even factor is halved before multiplying, so the result is exact modulo 2^64.
func Choose2(n uint64) uint64 {
	if n < 2 {
		return 0
	}
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	return a * b
}

// Returns C(n, 3) modulo 2^64, dividing the factors by 2 and 3 before multiplying
func Choose3(n uint64) uint64 {
	if n < 3 {
		return 0
	}
	factors := [3]uint64{n, n - 1, n - 2}
	for _, divisor := range [2]uint64{2, 3} {
		for i := range factors {
			if factors[i]%divisor == 0 {
				factors[i] /= divisor
				break
			}
		}
	}
	return factors[0] * factors[1] * factors[2]
}

// Returns C(n, k). Intermediate products must fit in 64 bits, which holds for the sizes used in tests and datasets.
func Binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	k = min(k, n-k)
	result := uint64(1)
	for i := range k {
		// result*(n-i) is divisible by i+1 since result = C(n, i)
		result = result * (n - i) / (i + 1)
	}
	return result
}
