package tick

import (
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

type Request struct {
	CharacterID  string
	DeltaSeconds float64
}

type Response struct {
	State            character.State `json:"state"`
	Events           []journal.Entry `json:"events"`
	AppliedDeltaSecs float64         `json:"applied_delta_seconds"`
	Clamped          bool            `json:"clamped"`
	HookError        string          `json:"hook_error,omitempty"`
}
