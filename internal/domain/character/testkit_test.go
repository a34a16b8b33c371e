package character

import "errors"

var errBoom = errors.New("boom")

type stubEffect struct {
	kind     string
	duration float64
	begins   int
	ends     int
	beginErr error
	endErr   error
	onBegin  func(Target)
	onEnd    func(Target)
}

func (e *stubEffect) Kind() string      { return e.kind }
func (e *stubEffect) Duration() float64 { return e.duration }

func (e *stubEffect) Begin(target Target) error {
	e.begins++
	if e.beginErr != nil {
		return e.beginErr
	}
	if e.onBegin != nil {
		e.onBegin(target)
	}
	return nil
}

func (e *stubEffect) End(target Target) error {
	e.ends++
	if e.onEnd != nil {
		e.onEnd(target)
	}
	return e.endErr
}

type stubTarget struct {
	speedDelta float64
	damage     int
	healed     int
}

func (t *stubTarget) ChangeSpeed(delta float64) { t.speedDelta += delta }

func (t *stubTarget) DealDamage(amount int) error {
	t.damage += amount
	return nil
}

func (t *stubTarget) HealDamage(amount int) error {
	t.healed += amount
	return nil
}

type eventLog struct {
	events []Event
}

func (l *eventLog) OnEvent(e Event) error {
	l.events = append(l.events, e)
	return nil
}

func (l *eventLog) ofType(t EventType) []Event {
	var out []Event
	for _, e := range l.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
