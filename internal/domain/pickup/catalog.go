package pickup

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"larryrun/internal/domain/character"
)

var (
	ErrUnknownKind   = errors.New("unknown pickup kind")
	ErrInvalidAmount = errors.New("pickup amount must be a finite, non-negative number")
)

// MaxHealthAmount bounds the amount of pickups that heal or damage.
const MaxHealthAmount = math.MaxInt32

type Params struct {
	Duration float64 `json:"duration"`
	Amount   float64 `json:"amount"`
}

type Factory func(p Params) character.Effect

// Catalog maps pickup kinds to effect factories and their tuned defaults.
type Catalog struct {
	factories map[string]Factory
	defaults  map[string]Params
	whole     map[string]bool
}

func NewCatalog() *Catalog {
	return &Catalog{
		factories: map[string]Factory{},
		defaults:  map[string]Params{},
		whole:     map[string]bool{},
	}
}

func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Register(KindSpeedBoost, func(p Params) character.Effect {
		return SpeedChange{kind: KindSpeedBoost, duration: p.Duration, delta: p.Amount}
	}, Params{Duration: SpeedBoostDuration, Amount: SpeedBoostAmount})
	c.Register(KindSlowdown, func(p Params) character.Effect {
		return SpeedChange{kind: KindSlowdown, duration: p.Duration, delta: -p.Amount}
	}, Params{Duration: SlowdownDuration, Amount: SlowdownAmount})
	c.RegisterWhole(KindRegeneration, func(p Params) character.Effect {
		return Regeneration{duration: p.Duration, amount: int(p.Amount)}
	}, Params{Duration: RegenerationDuration, Amount: RegenerationAmount})
	c.RegisterWhole(KindSpikes, func(p Params) character.Effect {
		return Spikes{duration: p.Duration, amount: int(p.Amount)}
	}, Params{Duration: SpikesDuration, Amount: SpikesAmount})
	return c
}

func (c *Catalog) Register(kind string, f Factory, defaults Params) {
	c.factories[kind] = f
	c.defaults[kind] = defaults
	delete(c.whole, kind)
}

// RegisterWhole registers a kind whose amount is a health value: it must be
// an integer no larger than MaxHealthAmount.
func (c *Catalog) RegisterWhole(kind string, f Factory, defaults Params) {
	c.Register(kind, f, defaults)
	c.whole[kind] = true
}

func (c *Catalog) Create(kind string) (character.Effect, error) {
	p, ok := c.defaults[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return c.CreateWith(kind, p)
}

// CreateWith builds an effect with explicit tuning, validating it the same
// way the registry would.
func (c *Catalog) CreateWith(kind string, p Params) (character.Effect, error) {
	f, ok := c.factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if !(p.Duration > 0) {
		return nil, fmt.Errorf("%s: %w", kind, character.ErrInvalidDuration)
	}
	if !(p.Amount >= 0) || math.IsInf(p.Amount, 1) {
		return nil, fmt.Errorf("%s: %w", kind, ErrInvalidAmount)
	}
	if c.whole[kind] && (p.Amount != math.Trunc(p.Amount) || p.Amount > MaxHealthAmount) {
		return nil, fmt.Errorf("%s amount %v: %w", kind, p.Amount, ErrInvalidAmount)
	}
	return f(p), nil
}

func (c *Catalog) Defaults(kind string) (Params, bool) {
	p, ok := c.defaults[kind]
	return p, ok
}

func (c *Catalog) Kinds() []string {
	out := make([]string, 0, len(c.factories))
	for k := range c.factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
