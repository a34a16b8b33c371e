package stateview

import (
	"math"

	"larryrun/internal/domain/character"
)

const (
	criticalHealthThreshold = 20
	expiringSoonSeconds     = 1.0
)

type View struct {
	Flags        []string `json:"flags"`
	ExpiringSoon []string `json:"expiring_soon"`
}

func Derive(state character.State) View {
	return View{
		Flags:        deriveFlags(state),
		ExpiringSoon: expiringSoon(state.ActiveEffects),
	}
}

func deriveFlags(state character.State) []string {
	flags := make([]string, 0, 3)
	switch {
	case state.Health <= 0:
		flags = append(flags, "DOWNED")
	case state.Health <= criticalHealthThreshold:
		flags = append(flags, "CRITICAL")
	}
	diff := state.TargetSpeed - state.Speed
	if math.Abs(diff) >= character.SpeedTolerance {
		if diff > 0 {
			flags = append(flags, "ACCELERATING")
		} else {
			flags = append(flags, "DECELERATING")
		}
	}
	if len(state.ActiveEffects) > 0 {
		flags = append(flags, "UNDER_EFFECT")
	}
	return flags
}

func expiringSoon(effects []character.ActiveEffect) []string {
	out := make([]string, 0, len(effects))
	for _, e := range effects {
		if e.Remaining <= expiringSoonSeconds {
			out = append(out, e.Kind)
		}
	}
	return out
}
