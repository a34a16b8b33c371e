// Command simulate drives one character down a generated track without a
// server, steering into the safest lane of the next chunk each frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	metricsinmem "larryrun/internal/adapter/metrics/inmemory"
	"larryrun/internal/adapter/repo/memory"
	worldruntime "larryrun/internal/adapter/world/runtime"
	"larryrun/internal/app/observe"
	"larryrun/internal/app/run"
	"larryrun/internal/app/shared/operation"
	"larryrun/internal/app/spawn"
	"larryrun/internal/domain/character"
	domainpickup "larryrun/internal/domain/pickup"
	"larryrun/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	var (
		seconds float64
		fps     int
		seed    uint64
		chance  float64
		verbose bool
	)
	flag.Float64Var(&seconds, "seconds", 30, "simulated run length")
	flag.IntVar(&fps, "fps", 60, "frames per simulated second")
	flag.Uint64Var(&seed, "seed", 1, "track seed")
	flag.Float64Var(&chance, "obstacles", world.DefaultObstacleChance, "obstacle chance per chunk")
	flag.BoolVar(&verbose, "v", false, "log every journaled event")
	flag.Parse()

	if fps <= 0 || seconds <= 0 {
		hlog.Fatalf("seconds and fps must be positive")
	}
	if !verbose {
		hlog.SetLevel(hlog.LevelWarn)
	}

	summary, err := simulate(context.Background(), seconds, fps, seed, chance, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("distance=%.1f health=%d speed=%.2f hook_failures=%d events=%v\n",
		summary.Distance, summary.State.Health, summary.State.Speed, summary.Metrics.HookFailure, summary.Metrics.ByEventType)
}

type Summary struct {
	State    character.State
	Distance float64
	Metrics  metricsinmem.Snapshot
}

func simulate(ctx context.Context, seconds float64, fps int, seed uint64, chance float64, verbose bool) (Summary, error) {
	store := memory.NewStore()
	tx := memory.NewTxManager(store)
	chars := memory.NewCharacterRepo(store)
	journal := memory.NewJournalRepo(store)
	metrics := metricsinmem.NewRecorder()
	catalog := domainpickup.DefaultCatalog()

	trackCfg := worldruntime.DefaultConfig()
	trackCfg.Track.Seed = seed
	trackCfg.Track.ObstacleChance = chance
	trackCfg.Track.Pickups = catalog.Kinds()
	tracks := worldruntime.NewProvider(trackCfg)

	// Simulated time keeps journal timestamps reproducible.
	clock := time.Unix(0, 0)
	now := func() time.Time { return clock }

	spawnUC := spawn.UseCase{
		TxManager:  tx,
		Characters: chars,
		Journal:    journal,
		Metrics:    metrics,
		NewID:      func() string { return fmt.Sprintf("sim-%d", seed) },
		Now:        now,
	}
	spawned, err := spawnUC.Execute(ctx, spawn.Request{})
	if err != nil {
		return Summary{}, err
	}
	id := spawned.State.ID

	runUC := run.UseCase{
		Runner:   operation.Runner{TxManager: tx, Characters: chars, Journal: journal, Metrics: metrics, Now: now},
		Tracks:   tracks,
		Catalog:  catalog,
		MaxDelta: 1,
	}
	observeUC := observe.UseCase{TxManager: tx, Characters: chars, Tracks: tracks}

	dt := 1 / float64(fps)
	frames := int(seconds * float64(fps))
	var last run.Response
	for i := 0; i < frames; i++ {
		view, err := observeUC.Execute(ctx, observe.Request{CharacterID: id, Ahead: 2})
		if err != nil {
			return Summary{}, err
		}
		last, err = runUC.Execute(ctx, run.Request{CharacterID: id, DeltaSeconds: dt, Lane: pickLane(view)})
		if err != nil {
			return Summary{}, err
		}
		clock = clock.Add(time.Duration(dt * float64(time.Second)))
		if verbose {
			for _, e := range last.Events {
				hlog.Infof("t=%.2fs %s %v", float64(i+1)*dt, e.Type, e.Payload)
			}
		}
	}
	final, err := observeUC.Execute(ctx, observe.Request{CharacterID: id, Ahead: 1})
	if err != nil {
		return Summary{}, err
	}
	return Summary{State: last.State, Distance: final.Distance, Metrics: metrics.Snapshot()}, nil
}

// pickLane scores the lanes of the next chunk whose midpoint is still
// ahead. Ties keep the lowest lane.
func pickLane(view observe.Response) int {
	if len(view.Chunks) == 0 {
		return 0
	}
	next := view.Chunks[0]
	mid := (float64(next.Index) + 0.5) * view.ChunkLength
	if view.Distance >= mid && len(view.Chunks) > 1 {
		next = view.Chunks[1]
	}
	best, bestScore := 0, -100
	for lane, cell := range next.Cells {
		if s := laneScore(cell); s > bestScore {
			best, bestScore = lane, s
		}
	}
	return best
}

func laneScore(cell world.Cell) int {
	switch cell.Kind {
	case world.CellBarrier:
		return -2
	case world.CellPickup:
		if cell.Pickup == domainpickup.KindSpikes || cell.Pickup == domainpickup.KindSlowdown {
			return -1
		}
		return 1
	default:
		return 0
	}
}
