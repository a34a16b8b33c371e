package inmemory

import (
	"testing"
	"time"

	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	at := time.Unix(1700000000, 0)
	r.RecordOperation("damage", []journal.Entry{
		journal.FromEvent("a", character.Event{Type: character.EventDamageTaken, Amount: 5}, at),
		journal.NewEntry("a", journal.TypeSettled, at, nil),
	})
	r.RecordOperation("heal", []journal.Entry{
		journal.FromEvent("a", character.Event{Type: character.EventHealed, Amount: 3}, at),
	})
	r.RecordHookFailure("pickup")
	r.RecordFailure("tick")

	s := r.Snapshot()
	if s.OperationTotal != 2 {
		t.Fatalf("expected total 2, got %d", s.OperationTotal)
	}
	if s.OperationFailure != 1 || s.HookFailure != 1 {
		t.Fatalf("expected one failure and one hook failure, got %+v", s)
	}
	if s.DamageTotal != 5 || s.HealTotal != 3 {
		t.Fatalf("expected damage 5 heal 3, got %d/%d", s.DamageTotal, s.HealTotal)
	}
	if s.ByOperation["damage"] != 1 || s.ByOperation["heal"] != 1 {
		t.Fatalf("unexpected by-operation counts: %v", s.ByOperation)
	}
	if s.ByEventType[journal.TypeSettled] != 1 {
		t.Fatalf("expected one settled entry, got %v", s.ByEventType)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordOperation("tick", nil)
	s := r.Snapshot()
	s.ByOperation["tick"] = 99
	if r.Snapshot().ByOperation["tick"] != 1 {
		t.Fatalf("snapshot mutation leaked into recorder")
	}
}
