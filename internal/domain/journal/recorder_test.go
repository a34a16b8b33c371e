package journal

import (
	"testing"
	"time"

	"larryrun/internal/domain/character"
)

func TestRecorderJournalsCharacterNotifications(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := character.New("larry", character.Config{StartSpeed: 3, StartHealth: 20, Smoothing: 5})
	if err != nil {
		t.Fatalf("character.New: %v", err)
	}
	rec := NewRecorder("larry", func() time.Time { return at })
	c.SubscribeAll(rec)

	c.Initialize()
	c.DealDamage(5)
	c.HealDamage(2)
	rec.Record(TypeSettled, map[string]any{"state_after": StatePayload(c.State())})

	entries := rec.Entries()
	wantTypes := []string{"speed_changed", "damage_taken", "healed", TypeSettled}
	if len(entries) != len(wantTypes) {
		t.Fatalf("expected %d entries, got %d", len(wantTypes), len(entries))
	}
	for i, want := range wantTypes {
		if entries[i].Type != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, entries[i].Type)
		}
		if entries[i].CharacterID != "larry" || !entries[i].OccurredAt.Equal(at) {
			t.Fatalf("entry %d: unexpected envelope %+v", i, entries[i])
		}
	}
	if entries[0].Payload["speed"] != 3.0 {
		t.Fatalf("expected speed payload 3, got %v", entries[0].Payload["speed"])
	}
	if entries[1].Payload["amount"] != 5 {
		t.Fatalf("expected damage amount 5, got %v", entries[1].Payload["amount"])
	}
	if entries[0].ID >= entries[1].ID {
		t.Fatalf("expected increasing ids, got %s then %s", entries[0].ID, entries[1].ID)
	}
	after := entries[3].Payload["state_after"].(map[string]any)
	if after["health"] != 17 {
		t.Fatalf("expected health 17 in settled payload, got %v", after["health"])
	}
}
