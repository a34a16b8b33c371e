package pickup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"larryrun/internal/app/shared/operation"
	"larryrun/internal/domain/character"
	domainpickup "larryrun/internal/domain/pickup"
)

var ErrInvalidRequest = errors.New("invalid pickup request")

type UseCase struct {
	Runner  operation.Runner
	Catalog *domainpickup.Catalog
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" || strings.TrimSpace(req.Kind) == "" {
		return Response{}, ErrInvalidRequest
	}
	effect, err := u.build(req)
	if err != nil {
		return Response{}, err
	}

	tile := domainpickup.NewTile(effect)
	outcome := character.ApplyRejected
	out, err := u.Runner.Run(ctx, operation.OpPickup, req.CharacterID, func(_ context.Context, c *character.Character) error {
		had := c.HasEffect(effect.Kind())
		if err := tile.Activate(c); err != nil {
			return err
		}
		outcome = character.ApplyActivated
		if had {
			outcome = character.ApplyRefreshed
		}
		return nil
	})
	hookErr, err := operation.SplitHookError(err)
	if err != nil {
		return Response{}, err
	}
	return Response{
		State:     out.State,
		Events:    out.Events,
		Outcome:   outcome.String(),
		HookError: hookErr,
	}, nil
}

// Kinds lists the catalog with its default tuning.
func (u UseCase) Kinds() []KindInfo {
	kinds := u.catalog().Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		p, _ := u.catalog().Defaults(k)
		out = append(out, KindInfo{Kind: k, Duration: p.Duration, Amount: p.Amount})
	}
	return out
}

func (u UseCase) build(req Request) (character.Effect, error) {
	catalog := u.catalog()
	params, ok := catalog.Defaults(req.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, domainpickup.ErrUnknownKind)
	}
	if req.Duration != nil {
		params.Duration = *req.Duration
	}
	if req.Amount != nil {
		params.Amount = *req.Amount
	}
	effect, err := catalog.CreateWith(req.Kind, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return effect, nil
}

func (u UseCase) catalog() *domainpickup.Catalog {
	if u.Catalog == nil {
		return domainpickup.DefaultCatalog()
	}
	return u.Catalog
}
