package random

// NoSpawn is what an empty table rolls.
const NoSpawn = "None"

// TableEntry is a single weighted entry in a RandomTable
type TableEntry struct {
	Name   string
	Weight int
}

// RandomTable picks names by relative weight
type RandomTable struct {
	Entries     []TableEntry
	totalWeight int
}

// NewRandomTable creates an empty table
func NewRandomTable() *RandomTable {
	return &RandomTable{}
}

// Add appends an entry. Entries with a non-positive weight can never be rolled and are dropped.
func (t *RandomTable) Add(name string, weight int) *RandomTable {
	if weight > 0 {
		t.totalWeight += weight
		t.Entries = append(t.Entries, TableEntry{Name: name, Weight: weight})
	}
	return t
}

// Roll picks an entry name. Entries keep their insertion order, so the same
// RNG state always yields the same name.
func (t *RandomTable) Roll(rng *RNG) string {
	if t.totalWeight == 0 {
		return NoSpawn
	}

	roll := rng.RollDice(1, t.totalWeight) - 1
	for _, entry := range t.Entries {
		if roll < entry.Weight {
			return entry.Name
		}
		roll -= entry.Weight
	}

	return NoSpawn
}
