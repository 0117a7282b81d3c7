package benchmark

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/limaJavier/threemul/pkg/counter"
)

type Disagreement struct {
	Dataset string
	Counts  map[counter.Algorithm]uint64
}

type DisagreementError struct {
	Disagreements []Disagreement
}

func (err DisagreementError) Error() string {
	descriptions := make([]string, 0, len(err.Disagreements))
	for _, disagreement := range err.Disagreements {
		counts := make([]string, 0, len(disagreement.Counts))
		for _, algorithm := range slices.Sorted(maps.Keys(disagreement.Counts)) {
			counts = append(counts, fmt.Sprintf("%v=%v", algorithm, disagreement.Counts[algorithm]))
		}
		descriptions = append(descriptions, fmt.Sprintf("%v (%v)", disagreement.Dataset, strings.Join(counts, ", ")))
	}
	return "algorithms disagree on " + strings.Join(descriptions, "; ")
}
