package character

import (
	"errors"
	"slices"
)

type ApplyOutcome int

const (
	ApplyRejected ApplyOutcome = iota
	ApplyActivated
	ApplyRefreshed
)

func (o ApplyOutcome) String() string {
	switch o {
	case ApplyActivated:
		return "activated"
	case ApplyRefreshed:
		return "refreshed"
	default:
		return "rejected"
	}
}

type ActiveEffect struct {
	Kind      string  `json:"kind"`
	Duration  float64 `json:"duration"`
	Elapsed   float64 `json:"elapsed"`
	Remaining float64 `json:"remaining"`
}

// Registry is the ordered set of effects currently active on one character.
// It holds at most one tracker per effect kind.
type Registry struct {
	trackers []*Tracker
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Apply activates effect on target, or restarts the timer of the tracker
// already running for the same kind. Begin only runs for fresh activations,
// and a failing Begin leaves the registry unchanged.
func (r *Registry) Apply(effect Effect, target Target) (ApplyOutcome, error) {
	tracker, err := NewTracker(effect)
	if err != nil {
		return ApplyRejected, err
	}
	if existing := r.find(tracker); existing != nil {
		existing.Reset()
		return ApplyRefreshed, nil
	}
	if err := effect.Begin(target); err != nil {
		return ApplyRejected, &HookError{Kind: effect.Kind(), Stage: HookBegin, Err: err}
	}
	r.trackers = append(r.trackers, tracker)
	return ApplyActivated, nil
}

// AdvanceAll ages every tracker by dt, then ends and removes the ones that
// expired, in the order they were encountered. Each expired tracker stays
// registered while its End hook runs and is removed afterwards, even when
// the hook fails. Hook failures are joined and returned after every expired
// tracker has been handled.
func (r *Registry) AdvanceAll(dt float64, target Target) ([]Effect, error) {
	var expired []*Tracker
	for _, t := range r.trackers {
		if t.Advance(dt) {
			expired = append(expired, t)
		}
	}
	if len(expired) == 0 {
		return nil, nil
	}

	ended := make([]Effect, 0, len(expired))
	var errs []error
	for _, t := range expired {
		if err := t.effect.End(target); err != nil {
			errs = append(errs, &HookError{Kind: t.Kind(), Stage: HookEnd, Err: err})
		}
		r.remove(t)
		ended = append(ended, t.effect)
	}
	return ended, errors.Join(errs...)
}

func (r *Registry) Has(kind string) bool {
	for _, t := range r.trackers {
		if t.Kind() == kind {
			return true
		}
	}
	return false
}

func (r *Registry) Len() int { return len(r.trackers) }

func (r *Registry) Active() []ActiveEffect {
	out := make([]ActiveEffect, 0, len(r.trackers))
	for _, t := range r.trackers {
		out = append(out, ActiveEffect{
			Kind:      t.Kind(),
			Duration:  t.effect.Duration(),
			Elapsed:   t.elapsed,
			Remaining: t.Remaining(),
		})
	}
	return out
}

func (r *Registry) find(probe *Tracker) *Tracker {
	for _, t := range r.trackers {
		if t.Equal(probe) {
			return t
		}
	}
	return nil
}

func (r *Registry) remove(t *Tracker) {
	if i := slices.Index(r.trackers, t); i >= 0 {
		r.trackers = slices.Delete(r.trackers, i, i+1)
	}
}
