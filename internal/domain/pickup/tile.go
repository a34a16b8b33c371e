package pickup

import (
	"errors"

	"larryrun/internal/domain/character"
)

var ErrTileConsumed = errors.New("pickup tile already consumed")

type Receiver interface {
	AddEffect(effect character.Effect) error
}

// Tile hands its effect to the first character that touches it and is
// consumed afterwards. A failed hand-off leaves the tile in place.
type Tile struct {
	effect   character.Effect
	consumed bool
}

func NewTile(effect character.Effect) *Tile {
	return &Tile{effect: effect}
}

func (t *Tile) Activate(r Receiver) error {
	if t.consumed {
		return ErrTileConsumed
	}
	if err := r.AddEffect(t.effect); err != nil {
		return err
	}
	t.consumed = true
	return nil
}

func (t *Tile) Consumed() bool { return t.consumed }

func (t *Tile) Kind() string {
	if t.effect == nil {
		return ""
	}
	return t.effect.Kind()
}
