package journal

import (
	"time"

	"larryrun/internal/domain/character"

	"github.com/oklog/ulid/v2"
)

const (
	TypeSpawned = "spawned"
	TypeSettled = "settled"
)

// Entry is one journaled notification. IDs are ULIDs, so sorting by ID
// sorts by time.
type Entry struct {
	ID          string         `json:"id"`
	CharacterID string         `json:"character_id"`
	Type        string         `json:"type"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload"`
}

func NewEntry(characterID, typ string, at time.Time, payload map[string]any) Entry {
	return Entry{
		ID:          ulid.Make().String(),
		CharacterID: characterID,
		Type:        typ,
		OccurredAt:  at,
		Payload:     payload,
	}
}

func FromEvent(characterID string, e character.Event, at time.Time) Entry {
	payload := map[string]any{}
	switch e.Type {
	case character.EventSpeedChanged:
		payload["speed"] = e.Speed
	case character.EventDamageTaken, character.EventHealed:
		payload["amount"] = e.Amount
	default:
		payload["kind"] = e.Kind
	}
	return NewEntry(characterID, string(e.Type), at, payload)
}

func StatePayload(s character.State) map[string]any {
	kinds := make([]any, 0, len(s.ActiveEffects))
	for _, e := range s.ActiveEffects {
		kinds = append(kinds, e.Kind)
	}
	return map[string]any{
		"health":       s.Health,
		"speed":        s.Speed,
		"target_speed": s.TargetSpeed,
		"effects":      kinds,
	}
}
