package dataset

import (
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSize = 5000

func isDescending(sequence []uint64) bool {
	return slices.IsSortedFunc(sequence, func(a, b uint64) int {
		if a > b {
			return -1
		} else if a < b {
			return 1
		}
		return 0
	})
}

func TestPrimes(t *testing.T) {
	g := NewWithT(t)
	g.Expect(Primes(2)).To(BeEmpty())
	g.Expect(Primes(3)).To(Equal([]uint64{2}))
	g.Expect(Primes(30)).To(Equal([]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}))
	g.Expect(Primes(1000)).To(HaveLen(168))
}

func TestGenerators(t *testing.T) {
	t.Run("Exact sizes", func(t *testing.T) {
		for _, name := range []string{"very_small_numbers", "very_big_numbers", "small_unique_numbers", "max_number", "max_numbers", "random_numbers"} {
			dataset, err := Generate(name, testSize)
			require.NoError(t, err)
			assert.Len(t, dataset.Sequence, testSize, name)
			assert.Equal(t, name, dataset.Name)
		}
	})

	t.Run("Distinct values", func(t *testing.T) {
		for _, name := range []string{"small_unique_numbers", "random_unique_numbers", "worst_subquadratic_case"} {
			dataset, err := Generate(name, testSize)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(dataset.Sequence), testSize, name)
			assert.Len(t, lo.Uniq(dataset.Sequence), len(dataset.Sequence), name)
			assert.True(t, isDescending(dataset.Sequence), name)
		}
	})

	t.Run("Shapes", func(t *testing.T) {
		g := NewWithT(t)

		g.Expect(VerySmallNumbers(300)[255:258]).To(Equal([]uint64{255, 0, 1}))
		g.Expect(SmallUniqueNumbers(3)).To(Equal([]uint64{3, 2, 1}))

		big := VeryBigNumbers(testSize)
		g.Expect(big[:4]).To(Equal([]uint64{math.MaxUint64 - 1, math.MaxUint64 - 1, math.MaxUint64 - 2, math.MaxUint64 - 2}))
		g.Expect(big[len(big)-1]).To(Equal(uint64(1)))

		maxNumber := MaxNumber(testSize)
		g.Expect(maxNumber[0]).To(Equal(MaxTriplesNumber))
		g.Expect(isDescending(maxNumber)).To(BeTrue())
		for _, value := range maxNumber {
			g.Expect(MaxTriplesNumber % value).To(BeZero())
		}

		g.Expect(isDescending(MaxNumbers(testSize))).To(BeTrue())
	})

	t.Run("Deterministic", func(t *testing.T) {
		for _, name := range Names() {
			first, err := Generate(name, 2000)
			require.NoError(t, err)
			second, err := Generate(name, 2000)
			require.NoError(t, err)
			assert.Equal(t, first.Sequence, second.Sequence, name)
		}
	})

	t.Run("Invalid requests", func(t *testing.T) {
		_, err := Generate("unknown", testSize)
		assert.Error(t, err)
		_, err = Generate("max_number", 0)
		assert.Error(t, err)
		_, err = GenerateAll([]string{"very_small_numbers", "unknown"}, testSize)
		assert.Error(t, err)
	})

	t.Run("All datasets", func(t *testing.T) {
		datasets, err := GenerateAll(nil, 1000)
		require.NoError(t, err)
		assert.Equal(t, Names(), lo.Map(datasets, func(dataset Dataset, _ int) string { return dataset.Name }))
	})
}

func TestInputFromFile(t *testing.T) {
	directory := t.TempDir()
	write := func(name, content string) string {
		file := filepath.Join(directory, name)
		require.NoError(t, os.WriteFile(file, []byte(content), 0666))
		return file
	}

	t.Run("JSON", func(t *testing.T) {
		// Arrange
		file := write("input.json", `{"datasets": [{"name": "cube", "sequence": [8, 2, 2, 2]}, {"name": "big", "sequence": [18446744073709551615, 0]}]}`)

		// Act
		datasets, err := InputFromFile(file)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []Dataset{
			{Name: "cube", Sequence: []uint64{8, 2, 2, 2}},
			{Name: "big", Sequence: []uint64{math.MaxUint64, 0}},
		}, datasets)
	})

	t.Run("YAML", func(t *testing.T) {
		// Arrange
		file := write("input.yaml", "datasets:\n  - name: zeros\n    sequence: [0, 0, 5, 7]\n  - name: big\n    sequence:\n      - 18446744073709551615\n      - 1\n")

		// Act
		datasets, err := InputFromFile(file)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []Dataset{
			{Name: "zeros", Sequence: []uint64{0, 0, 5, 7}},
			{Name: "big", Sequence: []uint64{math.MaxUint64, 1}},
		}, datasets)
	})

	t.Run("Bare list", func(t *testing.T) {
		datasets, err := InputFromFile(write("ones.json", "[1, 1, 1, 1]"))
		require.NoError(t, err)
		assert.Equal(t, []Dataset{{Name: "ones", Sequence: []uint64{1, 1, 1, 1}}}, datasets)
	})

	t.Run("Invalid files", func(t *testing.T) {
		_, err := InputFromFile(filepath.Join(directory, "missing.json"))
		assert.Error(t, err)

		_, err = InputFromFile(write("negative.json", "[1, -1]"))
		assert.Error(t, err)

		_, err = InputFromFile(write("unnamed.yaml", "datasets:\n  - sequence: [1]\n"))
		assert.Error(t, err)

		_, err = InputFromFile(write("broken.json", "{"))
		assert.Error(t, err)

		_, err = InputFromFile(write("duplicated.yaml", "datasets:\n  - name: cube\n    sequence: [8]\n  - name: cube\n    sequence: [2]\n"))
		assert.ErrorContains(t, err, "cube")
	})
}

func TestCheckUniqueNames(t *testing.T) {
	assert.NoError(t, CheckUniqueNames(nil))
	assert.NoError(t, CheckUniqueNames([]Dataset{{Name: "a"}, {Name: "b"}}))
	assert.ErrorContains(t, CheckUniqueNames([]Dataset{{Name: "a"}, {Name: "b"}, {Name: "a"}}), "\"a\"")
}
