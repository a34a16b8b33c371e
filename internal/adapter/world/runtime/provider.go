package runtime

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"sync"

	"larryrun/internal/domain/world"

	"github.com/google/uuid"
)

// SeedStore persists the seed each character's track was generated from,
// so a restarted server lays the same course out again.
type SeedStore interface {
	GetSeed(ctx context.Context, characterID string) (seed uint64, ok bool, err error)
	SaveSeed(ctx context.Context, characterID string, seed uint64) error
}

type Config struct {
	// Track is the template for every track; its Seed is mixed with the
	// character ID.
	Track world.TrackConfig
	Seeds SeedStore
}

type Provider struct {
	cfg    Config
	mu     sync.Mutex
	tracks map[string]*world.Track
}

func DefaultConfig() Config {
	return Config{Track: world.DefaultTrackConfig()}
}

func NewProvider(cfg Config) *Provider {
	return &Provider{cfg: cfg, tracks: map[string]*world.Track{}}
}

// TrackFor returns the cached track for characterID, creating it on first
// use. Tracks are not safe for concurrent use; callers serialize through
// their transaction manager.
func (p *Provider) TrackFor(ctx context.Context, characterID string) (*world.Track, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tracks[characterID]; ok {
		return t, nil
	}

	seed, err := p.seedFor(ctx, characterID)
	if err != nil {
		return nil, err
	}
	cfg := p.cfg.Track
	cfg.Seed = seed
	cfg.Pickups = append([]string(nil), cfg.Pickups...)
	t := world.NewTrack(cfg)
	p.tracks[characterID] = t
	return t, nil
}

func (p *Provider) seedFor(ctx context.Context, characterID string) (uint64, error) {
	if p.cfg.Seeds != nil {
		seed, ok, err := p.cfg.Seeds.GetSeed(ctx, characterID)
		if err != nil {
			return 0, err
		}
		if ok {
			return seed, nil
		}
	}
	seed := SeedFor(p.cfg.Track.Seed, characterID)
	if p.cfg.Seeds != nil {
		if err := p.cfg.Seeds.SaveSeed(ctx, characterID, seed); err != nil {
			return 0, err
		}
	}
	return seed, nil
}

// SeedFor derives a per-character seed. UUIDs contribute their raw bytes;
// any other ID is hashed.
func SeedFor(base uint64, characterID string) uint64 {
	if id, err := uuid.Parse(characterID); err == nil {
		return base ^ binary.BigEndian.Uint64(id[:8]) ^ binary.BigEndian.Uint64(id[8:])
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(characterID))
	return base ^ h.Sum64()
}
