package character

import "github.com/cloudwego/hertz/pkg/common/hlog"

type EventType string

const (
	EventSpeedChanged    EventType = "speed_changed"
	EventDamageTaken     EventType = "damage_taken"
	EventHealed          EventType = "healed"
	EventEffectApplied   EventType = "effect_applied"
	EventEffectRefreshed EventType = "effect_refreshed"
	EventEffectExpired   EventType = "effect_expired"
)

// Event is one change notification. Only the field matching Type is set:
// Speed for speed_changed, Amount for damage/heal, Kind for effect events.
type Event struct {
	Type   EventType
	Speed  float64
	Amount int
	Kind   string
}

type Listener interface {
	OnEvent(event Event) error
}

type ListenerFunc func(event Event) error

func (f ListenerFunc) OnEvent(event Event) error { return f(event) }

type Subscription int

type subscriber struct {
	id       Subscription
	listener Listener
}

// Dispatcher fans events out synchronously, in subscription order. A failing
// listener is logged and counted; the remaining listeners still run.
// Listeners must not mutate the character from inside OnEvent.
type Dispatcher struct {
	next      Subscription
	listeners map[EventType][]subscriber
	failed    int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]subscriber)}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.next++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.next, listener: listener})
	return d.next
}

func (d *Dispatcher) Unsubscribe(eventType EventType, id Subscription) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		if err := s.listener.OnEvent(event); err != nil {
			d.failed++
			hlog.Warnf("listener %d failed on %s: %v", s.id, event.Type, err)
		}
	}
}

// FailedDeliveries counts listener errors since the dispatcher was created.
func (d *Dispatcher) FailedDeliveries() int { return d.failed }

var AllEventTypes = []EventType{
	EventSpeedChanged,
	EventDamageTaken,
	EventHealed,
	EventEffectApplied,
	EventEffectRefreshed,
	EventEffectExpired,
}
