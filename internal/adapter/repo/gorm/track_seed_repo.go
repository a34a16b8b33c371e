package gormrepo

import (
	"context"
	"errors"

	"larryrun/internal/adapter/repo/gorm/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrackSeedRepo struct {
	db *gorm.DB
}

func NewTrackSeedRepo(db *gorm.DB) TrackSeedRepo {
	return TrackSeedRepo{db: db}
}

func (r TrackSeedRepo) GetSeed(ctx context.Context, characterID string) (uint64, bool, error) {
	var row model.TrackSeed
	err := dbFor(ctx, r.db).
		Where(&model.TrackSeed{CharacterID: characterID}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return uint64(row.Seed), true, nil
}

// SaveSeed keeps the first seed stored for a character.
func (r TrackSeedRepo) SaveSeed(ctx context.Context, characterID string, seed uint64) error {
	row := model.TrackSeed{CharacterID: characterID, Seed: int64(seed)}
	return dbFor(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}
