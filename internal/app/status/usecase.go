package status

import (
	"context"
	"errors"
	"strings"

	"larryrun/internal/app/ports"
	"larryrun/internal/app/stateview"
)

var ErrInvalidRequest = errors.New("invalid status request")

// DefaultEstimateTick is the frame length used to estimate when the speed
// settles.
const DefaultEstimateTick = 1.0 / 60

type UseCase struct {
	TxManager    ports.TxManager
	Characters   ports.CharacterRepository
	EstimateTick float64
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" {
		return Response{}, ErrInvalidRequest
	}
	tickLen := u.EstimateTick
	if tickLen <= 0 {
		tickLen = DefaultEstimateTick
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := u.Characters.Get(txCtx, req.CharacterID)
		if err != nil {
			return err
		}
		out.State = c.State()
		out.FailedDeliveries = c.FailedDeliveries()
		out.Settle = stateview.EstimateSettle(out.State.Speed, out.State.TargetSpeed, c.Config().Smoothing, tickLen)
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	out.View = stateview.Derive(out.State)
	return out, nil
}
