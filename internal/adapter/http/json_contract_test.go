package httpadapter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"larryrun/internal/app/replay"
	"larryrun/internal/app/run"
	"larryrun/internal/app/status"
	"larryrun/internal/app/tick"
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
	"larryrun/internal/domain/world"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	state := character.State{
		ID:          "c1",
		Health:      90,
		Speed:       6,
		TargetSpeed: 10,
		SpeedPhase:  character.PhaseConverging,
		ActiveEffects: []character.ActiveEffect{
			{Kind: "speed_boost", Duration: 3, Elapsed: 1, Remaining: 2},
		},
	}
	entry := journal.NewEntry("c1", journal.TypeSettled, now, map[string]any{"ok": true})

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "status",
			payload: status.Response{State: state},
			want:    []string{`"target_speed"`, `"speed_phase"`, `"active_effects"`, `"failed_deliveries"`, `"expiring_soon"`},
			notWant: []string{`"TargetSpeed"`, `"ActiveEffects"`},
		},
		{
			name:    "tick",
			payload: tick.Response{State: state, Events: []journal.Entry{entry}},
			want:    []string{`"applied_delta_seconds"`, `"character_id"`, `"occurred_at"`},
			notWant: []string{`"hook_error"`, `"CharacterID"`},
		},
		{
			name:    "run",
			payload: run.Response{State: state, Touched: []world.Cell{{Lane: 1, Kind: world.CellPickup, Pickup: "spikes"}}},
			want:    []string{`"touched"`, `"lane"`, `"pickup":"spikes"`},
			notWant: []string{`"Touched"`},
		},
		{
			name:    "replay",
			payload: replay.Response{Events: []journal.Entry{entry}},
			want:    []string{`"latest_state"`, `"events"`},
			notWant: []string{`"LatestState"`},
		},
	}
	for _, tc := range cases {
		b, err := json.Marshal(tc.payload)
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		s := string(b)
		for _, key := range tc.want {
			if !strings.Contains(s, key) {
				t.Fatalf("%s: expected %s in %s", tc.name, key, s)
			}
		}
		for _, key := range tc.notWant {
			if strings.Contains(s, key) {
				t.Fatalf("%s: did not expect %s in %s", tc.name, key, s)
			}
		}
	}
}
