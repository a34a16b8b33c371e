package pickup

import "larryrun/internal/domain/character"

const (
	KindSpeedBoost   = "speed_boost"
	KindSlowdown     = "slowdown"
	KindRegeneration = "regeneration"
	KindSpikes       = "spikes"
)

// SpeedChange shifts the target speed for its lifetime and gives it back on
// expiry.
type SpeedChange struct {
	kind     string
	duration float64
	delta    float64
}

func (e SpeedChange) Kind() string      { return e.kind }
func (e SpeedChange) Duration() float64 { return e.duration }
func (e SpeedChange) Delta() float64    { return e.delta }

func (e SpeedChange) Begin(target character.Target) error {
	target.ChangeSpeed(e.delta)
	return nil
}

func (e SpeedChange) End(target character.Target) error {
	target.ChangeSpeed(-e.delta)
	return nil
}

// Regeneration heals once on pickup. While it is active, picking up another
// one only extends it.
type Regeneration struct {
	duration float64
	amount   int
}

func (e Regeneration) Kind() string      { return KindRegeneration }
func (e Regeneration) Duration() float64 { return e.duration }

func (e Regeneration) Begin(target character.Target) error {
	return target.HealDamage(e.amount)
}

func (Regeneration) End(character.Target) error { return nil }

// Spikes hurts once on contact and then grants immunity to further spikes
// until it expires.
type Spikes struct {
	duration float64
	amount   int
}

func (e Spikes) Kind() string      { return KindSpikes }
func (e Spikes) Duration() float64 { return e.duration }

func (e Spikes) Begin(target character.Target) error {
	return target.DealDamage(e.amount)
}

func (Spikes) End(character.Target) error { return nil }
