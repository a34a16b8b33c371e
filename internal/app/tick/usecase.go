package tick

import (
	"context"
	"errors"
	"math"
	"strings"

	"larryrun/internal/app/shared/operation"
	"larryrun/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid tick request")

// DefaultMaxDelta caps one step so a stalled client cannot skip whole
// effects in a single update.
const DefaultMaxDelta = 0.25

type UseCase struct {
	Runner   operation.Runner
	MaxDelta float64
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" {
		return Response{}, ErrInvalidRequest
	}
	dt, clamped, err := ClampDelta(req.DeltaSeconds, u.MaxDelta)
	if err != nil {
		return Response{}, err
	}
	out, err := u.Runner.Run(ctx, operation.OpTick, req.CharacterID, func(_ context.Context, c *character.Character) error {
		return c.Update(dt)
	})
	hookErr, err := operation.SplitHookError(err)
	if err != nil {
		return Response{}, err
	}
	return Response{
		State:            out.State,
		Events:           out.Events,
		AppliedDeltaSecs: dt,
		Clamped:          clamped,
		HookError:        hookErr,
	}, nil
}

// ClampDelta validates a frame delta and caps it at maxDelta, falling back
// to DefaultMaxDelta when maxDelta is not positive.
func ClampDelta(dt, maxDelta float64) (float64, bool, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return 0, false, ErrInvalidRequest
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	if dt > maxDelta {
		return maxDelta, true, nil
	}
	return dt, false, nil
}
