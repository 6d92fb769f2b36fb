package generation

import (
	"ebiten-delve/dungeon"
)

// MapGenerator builds the map of one dungeon level. Implementations must
// return non-overlapping rooms, all connected, with the down stairs at the
// center of the last room and the blocked flags populated.
type MapGenerator interface {
	Generate(depth int) (*dungeon.Map, error)
}

// Algorithm selects the layout a DungeonGenerator produces
type Algorithm string

const (
	// AlgorithmRooms scatters random rooms joined in placement order
	AlgorithmRooms Algorithm = "rooms"
	// AlgorithmBSP partitions the map and puts one room per leaf
	AlgorithmBSP Algorithm = "bsp"
)

// Valid reports whether the algorithm is known
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmRooms, AlgorithmBSP, "":
		return true
	default:
		return false
	}
}
