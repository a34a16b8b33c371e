package vitals

import (
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

type Op string

const (
	OpDamage Op = "damage"
	OpHeal   Op = "heal"
)

type Request struct {
	CharacterID string
	Op          Op
	Amount      int
}

type Response struct {
	State  character.State `json:"state"`
	Events []journal.Entry `json:"events"`
}
