package operation

import (
	"context"
	"errors"
	"testing"
	"time"

	"larryrun/internal/adapter/metrics/inmemory"
	"larryrun/internal/adapter/repo/memory"
	"larryrun/internal/app/ports"
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

type failingEffect struct{}

func (failingEffect) Kind() string                 { return "cursed" }
func (failingEffect) Duration() float64            { return 1 }
func (failingEffect) Begin(character.Target) error { return errors.New("begin boom") }
func (failingEffect) End(character.Target) error   { return nil }

type failingJournal struct{ err error }

func (j failingJournal) Append(context.Context, string, []journal.Entry) error { return j.err }
func (j failingJournal) ListByCharacterID(context.Context, string, int) ([]journal.Entry, error) {
	return nil, ports.ErrNotFound
}

func newRunner(t *testing.T) (Runner, *inmemory.Recorder, memory.JournalRepo) {
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
	journalRepo := memory.NewJournalRepo(store)
	return Runner{
		TxManager:  memory.NewTxManager(store),
		Characters: chars,
		Journal:    journalRepo,
		Metrics:    metrics,
		Now:        func() time.Time { return time.Unix(1700000000, 0) },
	}, metrics, journalRepo
}

func TestRunner_JournalsNotificationsAndSettledEntry(t *testing.T) {
	r, metrics, journalRepo := newRunner(t)
	ctx := context.Background()

	out, err := r.Run(ctx, OpDamage, "c1", func(_ context.Context, c *character.Character) error {
		return c.DealDamage(7)
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.State.Health != 93 {
		t.Fatalf("expected health 93, got %d", out.State.Health)
	}
	if len(out.Events) != 2 || out.Events[0].Type != string(character.EventDamageTaken) || out.Events[1].Type != journal.TypeSettled {
		t.Fatalf("expected [damage_taken settled], got %+v", out.Events)
	}
	settled := out.Events[1].Payload
	if settled["op"] != OpDamage {
		t.Fatalf("expected op damage, got %v", settled["op"])
	}
	before := settled["state_before"].(map[string]any)
	after := settled["state_after"].(map[string]any)
	if before["health"] != 100 || after["health"] != 93 {
		t.Fatalf("expected health 100 -> 93, got %v -> %v", before["health"], after["health"])
	}

	stored, err := journalRepo.ListByCharacterID(ctx, "c1", 0)
	if err != nil || len(stored) != 2 {
		t.Fatalf("expected 2 stored entries, got %d err=%v", len(stored), err)
	}
	if got := metrics.Snapshot().ByOperation[OpDamage]; got != 1 {
		t.Fatalf("expected one damage operation recorded, got %d", got)
	}
}

func TestRunner_UnsubscribesRecorderAfterRun(t *testing.T) {
	r, _, _ := newRunner(t)
	ctx := context.Background()
	heal := func(_ context.Context, c *character.Character) error { return c.HealDamage(1) }

	if _, err := r.Run(ctx, OpHeal, "c1", heal); err != nil {
		t.Fatalf("first run: %v", err)
	}
	out, err := r.Run(ctx, OpHeal, "c1", heal)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(out.Events) != 2 {
		t.Fatalf("expected exactly one healed and one settled entry, got %d", len(out.Events))
	}
}

func TestRunner_MissingCharacter(t *testing.T) {
	r, metrics, _ := newRunner(t)
	_, err := r.Run(context.Background(), OpTick, "ghost", func(context.Context, *character.Character) error {
		t.Fatalf("fn must not run for a missing character")
		return nil
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if metrics.Snapshot().OperationFailure != 1 {
		t.Fatalf("expected failure recorded")
	}
}

func TestRunner_HookFailureKeepsState(t *testing.T) {
	r, metrics, _ := newRunner(t)
	out, err := r.Run(context.Background(), OpPickup, "c1", func(_ context.Context, c *character.Character) error {
		return c.AddEffect(failingEffect{})
	})
	var hookErr *character.HookError
	if !errors.As(err, &hookErr) {
		t.Fatalf("expected HookError, got %v", err)
	}
	if out.State.ID != "c1" || len(out.Events) == 0 {
		t.Fatalf("expected state and settled entry despite hook failure, got %+v", out)
	}
	if out.Events[len(out.Events)-1].Payload["error"] == nil {
		t.Fatalf("expected settled entry to carry the error")
	}
	s := metrics.Snapshot()
	if s.HookFailure != 1 || s.OperationTotal != 1 {
		t.Fatalf("expected one hook failure within one operation, got %+v", s)
	}
}

func TestRunner_JournalFailureDoesNotFailOperation(t *testing.T) {
	r, metrics, _ := newRunner(t)
	r.Journal = failingJournal{err: errors.New("disk full")}

	out, err := r.Run(context.Background(), OpDamage, "c1", func(_ context.Context, c *character.Character) error {
		return c.DealDamage(1)
	})
	if err != nil {
		t.Fatalf("expected journal failure to be swallowed, got %v", err)
	}
	if out.State.Health != 99 {
		t.Fatalf("expected health 99, got %d", out.State.Health)
	}
	if metrics.Snapshot().OperationFailure != 1 {
		t.Fatalf("expected journal failure counted")
	}
}

func TestSplitHookError(t *testing.T) {
	msg, err := SplitHookError(&character.HookError{Kind: "x", Stage: character.HookEnd, Err: errors.New("boom")})
	if err != nil || msg == "" {
		t.Fatalf("expected hook error split out, got msg=%q err=%v", msg, err)
	}
	plain := errors.New("plain")
	if _, err := SplitHookError(plain); !errors.Is(err, plain) {
		t.Fatalf("expected plain error passed through, got %v", err)
	}
}
