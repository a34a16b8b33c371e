package inmemory

import (
	"maps"
	"sync"

	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

type Snapshot struct {
	OperationTotal   uint64            `json:"operation_total"`
	OperationFailure uint64            `json:"operation_failure"`
	HookFailure      uint64            `json:"hook_failure"`
	DamageTotal      int64             `json:"damage_total"`
	HealTotal        int64             `json:"heal_total"`
	ByOperation      map[string]uint64 `json:"by_operation"`
	ByEventType      map[string]uint64 `json:"by_event_type"`
}

type Recorder struct {
	mu          sync.Mutex
	operations  uint64
	failures    uint64
	hooks       uint64
	damage      int64
	heal        int64
	byOperation map[string]uint64
	byEvent     map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byOperation: map[string]uint64{},
		byEvent:     map[string]uint64{},
	}
}

func (r *Recorder) RecordOperation(op string, entries []journal.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations++
	r.byOperation[op]++
	for _, e := range entries {
		r.byEvent[e.Type]++
		amount, _ := e.Payload["amount"].(int)
		switch e.Type {
		case string(character.EventDamageTaken):
			r.damage += int64(amount)
		case string(character.EventHealed):
			r.heal += int64(amount)
		}
	}
}

func (r *Recorder) RecordHookFailure(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks++
}

func (r *Recorder) RecordFailure(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		OperationTotal:   r.operations,
		OperationFailure: r.failures,
		HookFailure:      r.hooks,
		DamageTotal:      r.damage,
		HealTotal:        r.heal,
		ByOperation:      maps.Clone(r.byOperation),
		ByEventType:      maps.Clone(r.byEvent),
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
