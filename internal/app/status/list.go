package status

import (
	"context"

	"larryrun/internal/app/ports"
)

type ListResponse struct {
	CharacterIDs []string `json:"character_ids"`
}

type ListUseCase struct {
	Characters ports.CharacterRepository
}

func (u ListUseCase) Execute(ctx context.Context) (ListResponse, error) {
	ids, err := u.Characters.List(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ListResponse{CharacterIDs: ids}, nil
}
