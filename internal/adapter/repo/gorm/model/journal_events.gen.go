package model

import "time"

const TableNameJournalEvent = "journal_events"

// JournalEvent mapped from table <journal_events>
type JournalEvent struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	CharacterID string    `gorm:"column:character_id;not null" json:"character_id"`
	Type        string    `gorm:"column:type;not null" json:"type"`
	OccurredAt  time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	Payload     []byte    `gorm:"column:payload;not null" json:"payload"`
}

// TableName JournalEvent's table name
func (*JournalEvent) TableName() string {
	return TableNameJournalEvent
}
