package run

import (
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
	"larryrun/internal/domain/world"
)

type Request struct {
	CharacterID  string
	DeltaSeconds float64
	Lane         int
}

type Response struct {
	State            character.State `json:"state"`
	Events           []journal.Entry `json:"events"`
	Touched          []world.Cell    `json:"touched"`
	Distance         float64         `json:"distance"`
	AppliedDeltaSecs float64         `json:"applied_delta_seconds"`
	Clamped          bool            `json:"clamped"`
	HookError        string          `json:"hook_error,omitempty"`
}
