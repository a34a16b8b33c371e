package operation

import (
	"errors"

	"larryrun/internal/domain/character"
)

const (
	OpSpawn  = "spawn"
	OpTick   = "tick"
	OpRun    = "run"
	OpPickup = "pickup"
	OpDamage = "damage"
	OpHeal   = "heal"
)

// SplitHookError separates effect hook failures, which leave the character
// changed and are reported alongside the new state, from errors that
// should fail the request.
func SplitHookError(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	var hookErr *character.HookError
	if errors.As(err, &hookErr) {
		return err.Error(), nil
	}
	return "", err
}
