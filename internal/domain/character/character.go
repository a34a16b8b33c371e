package character

import "fmt"

// Character owns its health, active effects and speed controller, and
// reports every change through its dispatcher.
type Character struct {
	id      string
	health  Health
	effects *Registry
	speed   *SpeedController
	events  *Dispatcher
	cfg     Config
}

type State struct {
	ID            string         `json:"id"`
	Health        int            `json:"health"`
	Speed         float64        `json:"speed"`
	TargetSpeed   float64        `json:"target_speed"`
	SpeedPhase    SpeedPhase     `json:"speed_phase"`
	ActiveEffects []ActiveEffect `json:"active_effects"`
}

func New(id string, cfg Config) (*Character, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Character{
		id:      id,
		health:  Health{Current: cfg.StartHealth},
		effects: NewRegistry(),
		events:  NewDispatcher(),
		cfg:     cfg,
	}
	c.speed = NewSpeedController(cfg.Smoothing, func(speed float64) {
		c.events.Dispatch(Event{Type: EventSpeedChanged, Speed: speed})
	})
	return c, nil
}

func (c *Character) ID() string { return c.id }

func (c *Character) Config() Config { return c.cfg }

// Initialize publishes the starting speed. Call it after listeners are
// subscribed and before the first Update.
func (c *Character) Initialize() {
	c.speed.Initialize(c.cfg.StartSpeed)
}

// Update advances one tick: speed first, then effect timers. Speed changes
// made by End hooks show up from the next tick on.
func (c *Character) Update(dt float64) error {
	c.speed.Tick(dt)
	expired, err := c.effects.AdvanceAll(dt, c)
	for _, e := range expired {
		c.events.Dispatch(Event{Type: EventEffectExpired, Kind: e.Kind()})
	}
	return err
}

func (c *Character) AddEffect(effect Effect) error {
	outcome, err := c.effects.Apply(effect, c)
	switch outcome {
	case ApplyActivated:
		c.events.Dispatch(Event{Type: EventEffectApplied, Kind: effect.Kind()})
	case ApplyRefreshed:
		c.events.Dispatch(Event{Type: EventEffectRefreshed, Kind: effect.Kind()})
	}
	return err
}

// DealDamage notifies listeners before health changes.
func (c *Character) DealDamage(amount int) error {
	if amount < 0 {
		return fmt.Errorf("damage %d: %w", amount, ErrNegativeAmount)
	}
	c.events.Dispatch(Event{Type: EventDamageTaken, Amount: amount})
	c.health.Change(-amount)
	return nil
}

func (c *Character) HealDamage(amount int) error {
	if amount < 0 {
		return fmt.Errorf("heal %d: %w", amount, ErrNegativeAmount)
	}
	c.events.Dispatch(Event{Type: EventHealed, Amount: amount})
	c.health.Change(amount)
	return nil
}

func (c *Character) ChangeSpeed(delta float64) {
	c.speed.RequestChange(delta)
}

func (c *Character) Subscribe(eventType EventType, listener Listener) Subscription {
	return c.events.Subscribe(eventType, listener)
}

// SubscribeAll registers listener on every event type and returns the
// subscriptions in the order of AllEventTypes.
func (c *Character) SubscribeAll(listener Listener) []Subscription {
	out := make([]Subscription, 0, len(AllEventTypes))
	for _, t := range AllEventTypes {
		out = append(out, c.events.Subscribe(t, listener))
	}
	return out
}

func (c *Character) Unsubscribe(eventType EventType, id Subscription) {
	c.events.Unsubscribe(eventType, id)
}

func (c *Character) Health() int { return c.health.Current }

func (c *Character) Speed() float64 { return c.speed.Current() }

func (c *Character) TargetSpeed() float64 { return c.speed.Target() }

func (c *Character) SpeedPhase() SpeedPhase { return c.speed.Phase() }

func (c *Character) HasEffect(kind string) bool { return c.effects.Has(kind) }

func (c *Character) ActiveEffects() []ActiveEffect { return c.effects.Active() }

func (c *Character) FailedDeliveries() int { return c.events.FailedDeliveries() }

func (c *Character) State() State {
	return State{
		ID:            c.id,
		Health:        c.health.Current,
		Speed:         c.speed.Current(),
		TargetSpeed:   c.speed.Target(),
		SpeedPhase:    c.speed.Phase(),
		ActiveEffects: c.effects.Active(),
	}
}

var _ Target = (*Character)(nil)
