package memory

import (
	"context"
	"slices"

	"larryrun/internal/app/ports"
	"larryrun/internal/domain/character"
)

type CharacterRepo struct {
	store *Store
}

func NewCharacterRepo(store *Store) CharacterRepo {
	return CharacterRepo{store: store}
}

func (r CharacterRepo) Get(ctx context.Context, characterID string) (*character.Character, error) {
	defer r.store.guard(ctx)()
	c, ok := r.store.characters[characterID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return c, nil
}

func (r CharacterRepo) Add(ctx context.Context, c *character.Character) error {
	defer r.store.guard(ctx)()
	if _, ok := r.store.characters[c.ID()]; ok {
		return ports.ErrConflict
	}
	r.store.characters[c.ID()] = c
	r.store.order = append(r.store.order, c.ID())
	return nil
}

func (r CharacterRepo) List(ctx context.Context) ([]string, error) {
	defer r.store.guard(ctx)()
	return slices.Clone(r.store.order), nil
}
