package run

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"larryrun/internal/app/ports"
	"larryrun/internal/app/shared/operation"
	"larryrun/internal/app/tick"
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/pickup"
	"larryrun/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidRequest = errors.New("invalid run request")

const DefaultBarrierDamage = 25

// UseCase moves a character along its track for one frame: cells crossed
// in the chosen lane take effect first, then the regular update runs.
type UseCase struct {
	Runner        operation.Runner
	Tracks        ports.TrackProvider
	Catalog       *pickup.Catalog
	MaxDelta      float64
	BarrierDamage int
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" || req.Lane < 0 || req.Lane >= world.LaneCount {
		return Response{}, ErrInvalidRequest
	}
	dt, clamped, err := tick.ClampDelta(req.DeltaSeconds, u.MaxDelta)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var (
		touched  []world.Cell
		distance float64
	)
	out, err := u.Runner.Run(ctx, operation.OpRun, req.CharacterID, func(ctx context.Context, c *character.Character) error {
		track, err := u.Tracks.TrackFor(ctx, c.ID())
		if err != nil {
			return err
		}
		distance = max(c.Speed()*dt, 0)
		cells, err := track.Advance(distance, req.Lane)
		if err != nil {
			return err
		}
		touched = cells
		var errs []error
		for _, cell := range cells {
			if err := u.enter(ctx, c, cell); err != nil {
				errs = append(errs, err)
			}
		}
		errs = append(errs, c.Update(dt))
		return errors.Join(errs...)
	})
	hookErr, err := operation.SplitHookError(err)
	if err != nil {
		return Response{}, err
	}
	if touched == nil {
		touched = []world.Cell{}
	}
	return Response{
		State:            out.State,
		Events:           out.Events,
		Touched:          touched,
		Distance:         distance,
		AppliedDeltaSecs: dt,
		Clamped:          clamped,
		HookError:        hookErr,
	}, nil
}

func (u UseCase) enter(ctx context.Context, c *character.Character, cell world.Cell) error {
	switch cell.Kind {
	case world.CellBarrier:
		damage := u.BarrierDamage
		if damage <= 0 {
			damage = DefaultBarrierDamage
		}
		return c.DealDamage(damage)
	case world.CellPickup:
		effect, err := u.catalog().Create(cell.Pickup)
		if err != nil {
			hlog.CtxWarnf(ctx, "skipping pickup %q in lane %d: %v", cell.Pickup, cell.Lane, err)
			return nil
		}
		return pickup.NewTile(effect).Activate(c)
	default:
		return nil
	}
}

func (u UseCase) catalog() *pickup.Catalog {
	if u.Catalog == nil {
		return pickup.DefaultCatalog()
	}
	return u.Catalog
}
