package memory

import (
	"context"

	"larryrun/internal/app/ports"
	"larryrun/internal/domain/journal"
)

type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(ctx context.Context, characterID string, entries []journal.Entry) error {
	defer r.store.guard(ctx)()
	r.store.journal[characterID] = append(r.store.journal[characterID], entries...)
	return nil
}

func (r JournalRepo) ListByCharacterID(ctx context.Context, characterID string, limit int) ([]journal.Entry, error) {
	defer r.store.guard(ctx)()
	entries, ok := r.store.journal[characterID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]journal.Entry, len(entries))
	copy(out, entries)
	return out, nil
}
