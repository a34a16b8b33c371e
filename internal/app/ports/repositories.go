package ports

import (
	"context"

	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

// CharacterRepository holds live characters. Callers serialize access
// through a TxManager; the characters themselves are not goroutine-safe.
type CharacterRepository interface {
	Get(ctx context.Context, characterID string) (*character.Character, error)
	Add(ctx context.Context, c *character.Character) error
	List(ctx context.Context) ([]string, error)
}

// JournalRepository stores notification entries. ListByCharacterID returns
// the most recent entries, oldest first.
type JournalRepository interface {
	Append(ctx context.Context, characterID string, entries []journal.Entry) error
	ListByCharacterID(ctx context.Context, characterID string, limit int) ([]journal.Entry, error)
}
