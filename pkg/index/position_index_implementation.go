package index

import (
	"slices"

	"github.com/samber/lo"
)

type positionIndexImplementation struct {
	dense  [][]int
	sparse map[uint64][]int
	values []uint64 // Distinct values in order of first insertion, possibly including cleared ones
}

func (index *positionIndexImplementation) Insert(value uint64) {
	if value < DenseLimit {
		if index.dense[value] == nil {
			index.dense[value] = make([]int, 0, 1)
			index.values = append(index.values, value)
		}
		return
	}
	if _, ok := index.sparse[value]; !ok {
		index.sparse[value] = make([]int, 0, 1)
		index.values = append(index.values, value)
	}
}

func (index *positionIndexImplementation) AppendPosition(value uint64, position int) {
	index.Insert(value)
	if value < DenseLimit {
		index.dense[value] = append(index.dense[value], position)
		return
	}
	index.sparse[value] = append(index.sparse[value], position)
}

func (index *positionIndexImplementation) Get(value uint64) ([]int, bool) {
	if value < DenseLimit {
		positions := index.dense[value]
		return positions, len(positions) > 0
	}
	positions := index.sparse[value]
	return positions, len(positions) > 0
}

func (index *positionIndexImplementation) Clear(value uint64) {
	if value < DenseLimit {
		// Dense slots are emptied but keep their storage, so later inserts reuse it
		if index.dense[value] != nil {
			index.dense[value] = index.dense[value][:0]
		}
		return
	}
	delete(index.sparse, value)
}

func (index *positionIndexImplementation) CountAfter(value uint64, position int) int {
	positions, ok := index.Get(value)
	if !ok {
		return 0
	}
	rank, found := slices.BinarySearch(positions, position)
	if found {
		rank++
	}
	return len(positions) - rank
}

func (index *positionIndexImplementation) Values() []uint64 {
	// A sparse value cleared and inserted again is recorded twice
	return lo.Uniq(lo.Filter(index.values, func(value uint64, _ int) bool {
		_, ok := index.Get(value)
		return ok
	}))
}
