package observe

import (
	"context"
	"errors"
	"strings"

	"larryrun/internal/app/ports"
	"larryrun/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid observe request")

const (
	defaultAhead = 5
	maxAhead     = 32
)

// UseCase shows the chunks a character is about to run through.
type UseCase struct {
	TxManager  ports.TxManager
	Characters ports.CharacterRepository
	Tracks     ports.TrackProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.CharacterID) == "" || req.Ahead < 0 {
		return Response{}, ErrInvalidRequest
	}
	ahead := req.Ahead
	if ahead == 0 {
		ahead = defaultAhead
	}
	ahead = min(ahead, maxAhead)

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := u.Characters.Get(txCtx, req.CharacterID); err != nil {
			return err
		}
		track, err := u.Tracks.TrackFor(txCtx, req.CharacterID)
		if err != nil {
			return err
		}
		out.Distance = track.Distance()
		out.ChunkLength = track.ChunkLength()
		out.CurrentChunk = int(track.Distance() / track.ChunkLength())
		out.Chunks = make([]world.Chunk, 0, ahead)
		for i := 0; i < ahead; i++ {
			out.Chunks = append(out.Chunks, track.Chunk(out.CurrentChunk+i))
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
