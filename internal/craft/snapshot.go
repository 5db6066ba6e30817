package craft

import "go-crafting/internal/defs"

// Snapshot is a read-only copy of the game state for rendering and reports.
type Snapshot struct {
	Inventory    []Item
	Slot         []Item
	Crafted      []defs.CraftedKind
	Preview      *defs.CraftedKind
	Phase        Phase
	Discoverable []defs.Recipe
	Won          bool
}

// Snapshot copies the current state. Mutating the result does not affect g.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Inventory:    g.Inventory(),
		Slot:         g.Slot(),
		Crafted:      g.Crafted(),
		Phase:        g.Phase(),
		Discoverable: g.ComputeDiscoverable(),
		Won:          g.IsWon(),
	}
	if p, ok := g.Preview(); ok {
		s.Preview = &p
	}
	return s
}
