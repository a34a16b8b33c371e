package ports

import "context"

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type chainedTx []TxManager

// ChainTx nests managers: the first one is outermost.
func ChainTx(managers ...TxManager) TxManager {
	return chainedTx(managers)
}

func (c chainedTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if len(c) == 0 {
		return fn(ctx)
	}
	return c[0].RunInTx(ctx, func(ctx context.Context) error {
		return c[1:].RunInTx(ctx, fn)
	})
}
