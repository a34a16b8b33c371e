package spawn

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"larryrun/internal/app/ports"
	"larryrun/internal/app/shared/operation"
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid spawn request")

type UseCase struct {
	TxManager  ports.TxManager
	Characters ports.CharacterRepository
	Journal    ports.JournalRepository
	Metrics    ports.Metrics
	Defaults   character.Config
	NewID      func() string
	Now        func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	cfg, err := u.config(req)
	if err != nil {
		return Response{}, err
	}
	newID := u.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	c, err := character.New(newID(), cfg)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	rec := journal.NewRecorder(c.ID(), u.Now)
	subs := c.SubscribeAll(rec)
	c.Initialize()
	for i, id := range subs {
		c.Unsubscribe(character.AllEventTypes[i], id)
	}
	state := c.State()
	rec.Record(journal.TypeSpawned, map[string]any{
		"op":          operation.OpSpawn,
		"state_after": journal.StatePayload(state),
		"smoothing":   cfg.Smoothing,
	})
	events := rec.Entries()

	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.Characters.Add(txCtx, c); err != nil {
			return err
		}
		if u.Journal == nil {
			return nil
		}
		return u.Journal.Append(txCtx, c.ID(), events)
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure(operation.OpSpawn)
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordOperation(operation.OpSpawn, events)
	}
	hlog.CtxInfof(ctx, "spawned character %s speed=%.2f health=%d", c.ID(), state.Speed, state.Health)
	return Response{State: state, Events: events}, nil
}

func (u UseCase) config(req Request) (character.Config, error) {
	cfg := u.Defaults
	if cfg == (character.Config{}) {
		cfg = character.DefaultConfig()
	}
	if req.StartSpeed != nil {
		cfg.StartSpeed = *req.StartSpeed
	}
	if req.StartHealth != nil {
		cfg.StartHealth = *req.StartHealth
	}
	if req.Smoothing != nil {
		cfg.Smoothing = *req.Smoothing
	}
	if !finite(cfg.StartSpeed) || !finite(cfg.Smoothing) {
		return character.Config{}, fmt.Errorf("%w: speed and smoothing must be finite", ErrInvalidRequest)
	}
	if cfg.StartHealth <= 0 {
		return character.Config{}, fmt.Errorf("%w: start health must be positive", ErrInvalidRequest)
	}
	if err := cfg.Validate(); err != nil {
		return character.Config{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return cfg, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
