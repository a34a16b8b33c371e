package tick

import (
	"context"
	"errors"
	"testing"
	"time"

	"larryrun/internal/adapter/metrics/inmemory"
	"larryrun/internal/adapter/repo/memory"
	"larryrun/internal/app/shared/operation"
	"larryrun/internal/domain/character"
)

type brittleEffect struct{ duration float64 }

func (e brittleEffect) Kind() string                 { return "brittle" }
func (e brittleEffect) Duration() float64            { return e.duration }
func (e brittleEffect) Begin(character.Target) error { return nil }
func (e brittleEffect) End(character.Target) error   { return errors.New("end boom") }

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
