package pickup

import (
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

// Request applies one pickup kind. Duration and Amount override the
// catalog's tuning when set.
type Request struct {
	CharacterID string
	Kind        string
	Duration    *float64
	Amount      *float64
}

type Response struct {
	State     character.State `json:"state"`
	Events    []journal.Entry `json:"events"`
	Outcome   string          `json:"outcome"`
	HookError string          `json:"hook_error,omitempty"`
}

type KindInfo struct {
	Kind     string  `json:"kind"`
	Duration float64 `json:"duration"`
	Amount   float64 `json:"amount"`
}
