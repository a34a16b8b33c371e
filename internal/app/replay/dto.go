package replay

import "larryrun/internal/domain/journal"

type Request struct {
	CharacterID string
	Limit       int
	// Types keeps only entries of these types; empty keeps all.
	Types []string
}

type LatestState struct {
	Health      int      `json:"health"`
	Speed       float64  `json:"speed"`
	TargetSpeed float64  `json:"target_speed"`
	Effects     []string `json:"effects"`
}

type Response struct {
	Events      []journal.Entry `json:"events"`
	LatestState LatestState     `json:"latest_state"`
}
