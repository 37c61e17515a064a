package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Equal compares cell contents and side to move. History and move limit are ignored.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells && b.turn == other.turn
}

// Hash is consistent with Equal.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move
	binary.Write(hasher, binary.LittleEndian, int64(b.turn))

	// Hash cells
	for _, p := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int8(p))
	}

	return StateHash(hasher.Sum64())
}
