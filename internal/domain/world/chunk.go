package world

import "math/rand/v2"

const LaneCount = 3

type Chunk struct {
	Index int             `json:"index"`
	Cells [LaneCount]Cell `json:"cells"`
}

func (c *Chunk) Reset() {
	for i := range c.Cells {
		c.Cells[i] = Cell{Lane: i, Kind: CellEmpty}
	}
}

// Generate fills the chunk. Obstacle chunks always keep one random lane
// free; the other lanes get a random kind, and pickup cells draw their
// pickup kind from pickups.
func (c *Chunk) Generate(rng *rand.Rand, obstacle bool, pickups []string) {
	c.Reset()
	if !obstacle {
		return
	}
	passage := rng.IntN(LaneCount)
	for i := range c.Cells {
		if i == passage {
			continue
		}
		kind := cellKinds[rng.IntN(len(cellKinds))]
		if kind == CellPickup {
			if len(pickups) == 0 {
				continue
			}
			c.Cells[i].Pickup = pickups[rng.IntN(len(pickups))]
		}
		c.Cells[i].Kind = kind
	}
}

func (c Chunk) Passable() bool {
	for _, cell := range c.Cells {
		if cell.Kind != CellBarrier {
			return true
		}
	}
	return false
}
