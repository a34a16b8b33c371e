package journal

import (
	"time"

	"larryrun/internal/domain/character"
)

// Recorder is a character listener that turns notifications into entries.
type Recorder struct {
	characterID string
	now         func() time.Time
	entries     []Entry
}

func NewRecorder(characterID string, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{characterID: characterID, now: now}
}

func (r *Recorder) OnEvent(e character.Event) error {
	r.entries = append(r.entries, FromEvent(r.characterID, e, r.now()))
	return nil
}

func (r *Recorder) Record(typ string, payload map[string]any) {
	r.entries = append(r.entries, NewEntry(r.characterID, typ, r.now(), payload))
}

func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
