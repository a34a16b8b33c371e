package model

import "time"

const TableNameTrackSeed = "track_seeds"

// TrackSeed mapped from table <track_seeds>
type TrackSeed struct {
	CharacterID string    `gorm:"column:character_id;primaryKey" json:"character_id"`
	Seed        int64     `gorm:"column:seed;not null" json:"seed"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

// TableName TrackSeed's table name
func (*TrackSeed) TableName() string {
	return TableNameTrackSeed
}
