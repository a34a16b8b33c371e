package vitals

import (
	"context"
	"errors"
	"strings"

	"larryrun/internal/app/shared/operation"
	"larryrun/internal/domain/character"
)

var ErrInvalidRequest = errors.New("invalid vitals request")

type UseCase struct {
	Runner operation.Runner
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" || req.Amount < 0 {
		return Response{}, ErrInvalidRequest
	}
	var (
		op    string
		apply func(c *character.Character) error
	)
	switch req.Op {
	case OpDamage:
		op = operation.OpDamage
		apply = func(c *character.Character) error { return c.DealDamage(req.Amount) }
	case OpHeal:
		op = operation.OpHeal
		apply = func(c *character.Character) error { return c.HealDamage(req.Amount) }
	default:
		return Response{}, ErrInvalidRequest
	}

	out, err := u.Runner.Run(ctx, op, req.CharacterID, func(_ context.Context, c *character.Character) error {
		return apply(c)
	})
	if err != nil {
		return Response{}, err
	}
	return Response{State: out.State, Events: out.Events}, nil
}
