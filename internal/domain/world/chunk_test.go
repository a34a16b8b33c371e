package world

import (
	"math/rand/v2"
	"testing"
)

func TestChunkGenerateWithoutObstaclesIsEmpty(t *testing.T) {
	var c Chunk
	c.Generate(rand.New(rand.NewPCG(1, 2)), false, []string{"speed_boost"})
	for i, cell := range c.Cells {
		if cell.Kind != CellEmpty || cell.Lane != i {
			t.Fatalf("lane %d: expected empty cell, got %+v", i, cell)
		}
	}
}

func TestChunkGenerateAlwaysLeavesAPassage(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	pickups := []string{"speed_boost", "slowdown"}
	for i := 0; i < 500; i++ {
		var c Chunk
		c.Generate(rng, true, pickups)
		if !c.Passable() {
			t.Fatalf("iteration %d: chunk fully blocked: %+v", i, c.Cells)
		}
		for _, cell := range c.Cells {
			if cell.Kind == CellPickup && cell.Pickup == "" {
				t.Fatalf("pickup cell without pickup kind: %+v", cell)
			}
		}
	}
}

func TestChunkGenerateWithoutPickupsNeverPlacesPickupCells(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 200; i++ {
		var c Chunk
		c.Generate(rng, true, nil)
		for _, cell := range c.Cells {
			if cell.Kind == CellPickup {
				t.Fatalf("unexpected pickup cell %+v", cell)
			}
		}
	}
}

func TestChunkReset(t *testing.T) {
	c := Chunk{}
	c.Cells[1] = Cell{Lane: 1, Kind: CellBarrier}
	c.Reset()
	if c.Cells[1].Kind != CellEmpty {
		t.Fatalf("expected reset to clear cells, got %+v", c.Cells[1])
	}
}
