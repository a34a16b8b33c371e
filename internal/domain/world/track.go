package world

import (
	"errors"
	"math/rand/v2"
)

var ErrInvalidLane = errors.New("invalid lane")

type TrackConfig struct {
	Seed           uint64
	ChunkLength    float64
	ObstacleChance float64
	SafeChunks     int
	Pickups        []string
}

func DefaultTrackConfig() TrackConfig {
	return TrackConfig{
		Seed:           1,
		ChunkLength:    DefaultChunkLength,
		ObstacleChance: DefaultObstacleChance,
		SafeChunks:     DefaultSafeChunks,
	}
}

// Track is an endless run of chunks generated on demand from a seed, so two
// tracks with the same config lay out identically.
type Track struct {
	cfg      TrackConfig
	rng      *rand.Rand
	chunks   []Chunk
	distance float64
}

func NewTrack(cfg TrackConfig) *Track {
	def := DefaultTrackConfig()
	if cfg.ChunkLength <= 0 {
		cfg.ChunkLength = def.ChunkLength
	}
	if cfg.ObstacleChance < 0 {
		cfg.ObstacleChance = 0
	}
	if cfg.ObstacleChance > 1 {
		cfg.ObstacleChance = 1
	}
	if cfg.SafeChunks < 0 {
		cfg.SafeChunks = 0
	}
	return &Track{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^seedMix)),
	}
}

func (t *Track) Distance() float64 { return t.distance }

func (t *Track) ChunkLength() float64 { return t.cfg.ChunkLength }

func (t *Track) Chunk(index int) Chunk {
	for len(t.chunks) <= index {
		i := len(t.chunks)
		var c Chunk
		c.Index = i
		obstacle := i >= t.cfg.SafeChunks && t.rng.Float64() < t.cfg.ObstacleChance
		c.Generate(t.rng, obstacle, t.cfg.Pickups)
		t.chunks = append(t.chunks, c)
	}
	return t.chunks[index]
}

// Advance moves the runner forward and returns the cells it touched in lane.
// A cell is touched when the runner passes the middle of its chunk.
func (t *Track) Advance(distance float64, lane int) ([]Cell, error) {
	if lane < 0 || lane >= LaneCount {
		return nil, ErrInvalidLane
	}
	if distance <= 0 {
		return nil, nil
	}
	from := t.distance
	t.distance += distance

	var touched []Cell
	half := t.cfg.ChunkLength / 2
	first := int((from - half) / t.cfg.ChunkLength)
	if from < half {
		first = -1
	}
	for i := first + 1; ; i++ {
		mid := float64(i)*t.cfg.ChunkLength + half
		if mid > t.distance {
			break
		}
		if mid <= from {
			continue
		}
		touched = append(touched, t.Chunk(i).Cells[lane])
	}
	return touched, nil
}
