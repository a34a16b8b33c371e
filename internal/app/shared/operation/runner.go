package operation

import (
	"context"
	"errors"
	"time"

	"larryrun/internal/app/ports"
	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Runner executes one mutation against a live character: it serializes the
// call, journals every notification the mutation fires and closes the batch
// with a settled entry carrying the state before and after.
type Runner struct {
	TxManager  ports.TxManager
	Characters ports.CharacterRepository
	Journal    ports.JournalRepository
	Metrics    ports.Metrics
	Now        func() time.Time
}

type Result struct {
	State  character.State
	Events []journal.Entry
}

type Func func(ctx context.Context, c *character.Character) error

// Run returns the mutation's own error alongside the result: hook failures
// leave the character changed, and the caller still gets the new state.
// Journal write failures are logged and counted but do not fail the call,
// since the in-memory change has already happened.
func (r Runner) Run(ctx context.Context, op, characterID string, fn Func) (Result, error) {
	nowFn := r.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var (
		out        Result
		opErr      error
		journalErr error
	)
	err := r.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := r.Characters.Get(txCtx, characterID)
		if err != nil {
			return err
		}

		rec := journal.NewRecorder(characterID, nowFn)
		subs := c.SubscribeAll(rec)
		defer func() {
			for i, id := range subs {
				c.Unsubscribe(character.AllEventTypes[i], id)
			}
		}()

		before := c.State()
		opErr = fn(txCtx, c)
		out.State = c.State()

		payload := map[string]any{
			"op":           op,
			"state_before": journal.StatePayload(before),
			"state_after":  journal.StatePayload(out.State),
		}
		if opErr != nil {
			payload["error"] = opErr.Error()
		}
		rec.Record(journal.TypeSettled, payload)
		out.Events = rec.Entries()

		if r.Journal != nil {
			journalErr = r.Journal.Append(txCtx, characterID, out.Events)
			return journalErr
		}
		return nil
	})
	if err != nil && journalErr == nil {
		r.recordFailure(op)
		return Result{}, err
	}
	if journalErr != nil {
		hlog.CtxErrorf(ctx, "journal append for %s (%s) failed: %v", characterID, op, journalErr)
		r.recordFailure(op)
	}

	if r.Metrics != nil {
		r.Metrics.RecordOperation(op, out.Events)
	}
	var hookErr *character.HookError
	if errors.As(opErr, &hookErr) {
		hlog.CtxWarnf(ctx, "%s on %s: %v", op, characterID, opErr)
		if r.Metrics != nil {
			r.Metrics.RecordHookFailure(op)
		}
	}
	return out, opErr
}

func (r Runner) recordFailure(op string) {
	if r.Metrics != nil {
		r.Metrics.RecordFailure(op)
	}
}
