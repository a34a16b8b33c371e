package stateview

import (
	"math"

	"larryrun/internal/domain/character"

	"github.com/go-gl/mathgl/mgl64"
)

const maxEstimatedTicks = 10_000

type SettleEstimate struct {
	Settled bool    `json:"settled"`
	Ticks   int     `json:"ticks"`
	Seconds float64 `json:"seconds"`
	// Reachable is false when the smoothing factor never moves the speed.
	Reachable bool `json:"reachable"`
}

// EstimateSettle replays the controller's easing at a fixed tick length and
// counts ticks until the speed equals its target, snap included.
func EstimateSettle(current, target, smoothing, dt float64) SettleEstimate {
	if current == target {
		return SettleEstimate{Settled: true, Reachable: true}
	}
	if dt <= 0 {
		return SettleEstimate{}
	}
	step := mgl64.Clamp(smoothing*dt, 0, 1)
	ticks := 0
	for ticks < maxEstimatedTicks {
		ticks++
		if math.Abs(target-current) < character.SpeedTolerance {
			return SettleEstimate{Ticks: ticks, Seconds: float64(ticks) * dt, Reachable: true}
		}
		if step == 0 {
			return SettleEstimate{}
		}
		current += (target - current) * step
		if current == target {
			return SettleEstimate{Ticks: ticks, Seconds: float64(ticks) * dt, Reachable: true}
		}
	}
	return SettleEstimate{}
}
