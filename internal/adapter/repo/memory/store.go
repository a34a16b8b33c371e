package memory

import (
	"context"
	"sync"

	"larryrun/internal/domain/character"
	"larryrun/internal/domain/journal"
)

type Store struct {
	mu         sync.Mutex
	characters map[string]*character.Character
	order      []string
	journal    map[string][]journal.Entry
}

func NewStore() *Store {
	return &Store{
		characters: make(map[string]*character.Character),
		journal:    make(map[string][]journal.Entry),
	}
}

type txKey struct{}

// guard locks the store unless ctx already runs inside one of its
// transactions.
func (s *Store) guard(ctx context.Context) func() {
	if held, _ := ctx.Value(txKey{}).(*Store); held == s {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
