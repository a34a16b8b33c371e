package character

// Target is what effect hooks are allowed to touch on the character they
// were applied to.
type Target interface {
	ChangeSpeed(delta float64)
	DealDamage(amount int) error
	HealDamage(amount int) error
}

// Effect is a shared, read-only template for one kind of timed status effect.
// Two effects with the same Kind are the same effect for refresh purposes.
type Effect interface {
	Kind() string
	Duration() float64
	Begin(target Target) error
	End(target Target) error
}

func validateEffect(e Effect) error {
	if e == nil {
		return ErrNilEffect
	}
	if !(e.Duration() > 0) {
		return ErrInvalidDuration
	}
	return nil
}
