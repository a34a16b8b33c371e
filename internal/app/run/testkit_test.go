package run

import (
	"context"
	"testing"
	"time"

	"larryrun/internal/adapter/metrics/inmemory"
	"larryrun/internal/adapter/repo/memory"
	"larryrun/internal/app/shared/operation"
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/pickup"
	"larryrun/internal/domain/world"
)

type fixedTracks struct{ track *world.Track }

func (p fixedTracks) TrackFor(context.Context, string) (*world.Track, error) { return p.track, nil }

type recordingSeeds struct{ calls []string }

func (s *recordingSeeds) GetSeed(_ context.Context, id string) (uint64, bool, error) {
	s.calls = append(s.calls, "get:"+id)
	return 0, false, nil
}

func (s *recordingSeeds) SaveSeed(_ context.Context, id string, _ uint64) error {
	s.calls = append(s.calls, "save:"+id)
	return nil
}

// trackWith finds a seed whose first chunk has kind in some lane.
func trackWith(t *testing.T, kind world.CellKind) (*world.Track, int) {
	t.Helper()
	for seed := uint64(1); seed < 1000; seed++ {
		cfg := world.TrackConfig{
			Seed:           seed,
			ChunkLength:    world.DefaultChunkLength,
			ObstacleChance: 1,
			Pickups:        []string{pickup.KindRegeneration},
		}
		probe := world.NewTrack(cfg)
		for lane, cell := range probe.Chunk(0).Cells {
			if cell.Kind == kind {
				return world.NewTrack(cfg), lane
			}
		}
	}
	t.Fatalf("no seed produced a %s cell", kind)
	return nil, 0
}

func seededRunner(t *testing.T) (operation.Runner, *character.Character, *inmemory.Recorder) {
	t.Helper()
	store := memory.NewStore()
	chars := memory.NewCharacterRepo(store)
	c, err := character.New("c1", character.DefaultConfig())
	if err != nil {
		t.Fatalf("new character: %v", err)
	}
	c.Initialize()
	if err := chars.Add(context.Background(), c); err != nil {
		t.Fatalf("add: %v", err)
	}
	metrics := inmemory.NewRecorder()
	return operation.Runner{
		TxManager:  memory.NewTxManager(store),
		Characters: chars,
		Journal:    memory.NewJournalRepo(store),
		Metrics:    metrics,
		Now:        func() time.Time { return time.Unix(1700000000, 0) },
	}, c, metrics
}
