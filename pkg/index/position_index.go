// Package index maps every distinct value of a sequence to the ascending list of positions holding it.
package index

// Values below DenseLimit are stored in a directly indexed array, larger ones in a hash map
const DenseLimit = 1 << 16

// PositionIndex interface is designed to give, for a value, the ascending positions where it occurs in a sequence
type PositionIndex interface {
	// Registers value without positions; no-op if it is already present
	Insert(value uint64)
	// Appends position to the list of value. Positions must be appended in increasing order
	AppendPosition(value uint64, position int)
	// Returns the ascending positions of value, or false if value has no positions (never occurred or was cleared)
	Get(value uint64) ([]int, bool)
	// Removes every position of value
	Clear(value uint64)
	// Returns how many positions of value are strictly greater than position
	CountAfter(value uint64, position int) int
	// Returns the distinct values currently present, in order of first insertion
	Values() []uint64
}

func NewPositionIndex() PositionIndex {
	return &positionIndexImplementation{
		dense:  make([][]int, DenseLimit),
		sparse: make(map[uint64][]int),
		values: make([]uint64, 0),
	}
}

// Builds the index of sequence in a single left-to-right scan
func BuildPositionIndex(sequence []uint64) PositionIndex {
	index := NewPositionIndex()
	for position, value := range sequence {
		index.AppendPosition(value, position)
	}
	return index
}
