package spawn

import (
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

// Request overrides; nil fields fall back to the server defaults.
type Request struct {
	StartSpeed  *float64 `json:"start_speed,omitempty"`
	StartHealth *int     `json:"start_health,omitempty"`
	Smoothing   *float64 `json:"smoothing,omitempty"`
}

type Response struct {
	State  character.State `json:"state"`
	Events []journal.Entry `json:"events"`
}
