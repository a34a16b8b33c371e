package replay

import (
	"context"
	"errors"
	"slices"
	"strings"

	"larryrun/internal/app/ports"
	"larryrun/internal/domain/journal"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const DefaultLimit = 200

type UseCase struct {
	Journal ports.JournalRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" || req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	entries, err := u.Journal.ListByCharacterID(ctx, req.CharacterID, limit)
	if err != nil {
		return Response{}, err
	}
	latest := reconstruct(entries)
	return Response{Events: filterByType(entries, req.Types), LatestState: latest}, nil
}

func filterByType(entries []journal.Entry, types []string) []journal.Entry {
	if len(types) == 0 {
		return entries
	}
	out := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		if slices.Contains(types, e.Type) {
			out = append(out, e)
		}
	}
	return out
}

// reconstruct takes the newest state_after snapshot; spawned and settled
// entries both carry one.
func reconstruct(entries []journal.Entry) LatestState {
	state := LatestState{Effects: []string{}}
	for _, e := range entries {
		after, ok := e.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		state.Health = int(num(after["health"]))
		state.Speed = num(after["speed"])
		state.TargetSpeed = num(after["target_speed"])
		state.Effects = strs(after["effects"])
	}
	return state
}

// num reads numbers that are native Go values from the memory journal or
// float64 after a JSON round trip.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func strs(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
