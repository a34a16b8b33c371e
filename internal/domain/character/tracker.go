package character

// Tracker is the live timer for one application of an Effect.
type Tracker struct {
	effect  Effect
	elapsed float64
}

func NewTracker(effect Effect) (*Tracker, error) {
	if err := validateEffect(effect); err != nil {
		return nil, err
	}
	return &Tracker{effect: effect}, nil
}

func (t *Tracker) Effect() Effect { return t.effect }

func (t *Tracker) Kind() string { return t.effect.Kind() }

func (t *Tracker) Elapsed() float64 { return t.elapsed }

func (t *Tracker) Remaining() float64 {
	return t.effect.Duration() - t.elapsed
}

// Advance ages the tracker and reports whether its lifetime is over.
// Non-positive deltas leave the timer untouched.
func (t *Tracker) Advance(dt float64) bool {
	duration := t.effect.Duration()
	if dt > 0 {
		t.elapsed += dt
		if t.elapsed > duration {
			t.elapsed = duration
		}
	}
	return t.elapsed >= duration
}

func (t *Tracker) Reset() {
	t.elapsed = 0
}

// Equal compares the wrapped effects by kind; elapsed time is ignored.
func (t *Tracker) Equal(other *Tracker) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Kind() == other.Kind()
}
