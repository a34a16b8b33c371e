package ports

import (
	"context"

	"larryrun/internal/domain/world"
)

type TrackProvider interface {
	TrackFor(ctx context.Context, characterID string) (*world.Track, error)
}
