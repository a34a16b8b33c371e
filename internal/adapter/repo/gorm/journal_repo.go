package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"larryrun/internal/adapter/repo/gorm/model"
	"larryrun/internal/app/ports"
	"larryrun/internal/domain/journal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepo {
	return JournalRepo{db: db}
}

func (r JournalRepo) Append(ctx context.Context, characterID string, entries []journal.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	rows := make([]model.JournalEvent, 0, len(entries))
	for _, e := range entries {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.JournalEvent{
			ID:          e.ID,
			CharacterID: characterID,
			Type:        e.Type,
			OccurredAt:  e.OccurredAt,
			Payload:     b,
		})
	}
	err := dbFor(ctx, r.db).Create(&rows).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ports.ErrConflict
	}
	return err
}

func (r JournalRepo) ListByCharacterID(ctx context.Context, characterID string, limit int) ([]journal.Entry, error) {
	rows := []model.JournalEvent{}
	query := dbFor(ctx, r.db).
		Where(&model.JournalEvent{CharacterID: characterID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	slices.Reverse(rows)

	out := make([]journal.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := toEntry(row)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func toEntry(row model.JournalEvent) (journal.Entry, error) {
	var payload map[string]any
	if len(row.Payload) > 0 {
		if err := json.Unmarshal(row.Payload, &payload); err != nil {
			return journal.Entry{}, fmt.Errorf("decode journal event %s payload: %w", row.ID, err)
		}
	}
	return journal.Entry{
		ID:          row.ID,
		CharacterID: row.CharacterID,
		Type:        row.Type,
		OccurredAt:  row.OccurredAt,
		Payload:     payload,
	}, nil
}
