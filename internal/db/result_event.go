package db

import (
	"time"

	"gorm.io/datatypes"
)

// ResultEvent is one line of the write-only results audit log.
type ResultEvent struct {
	ID           uint           `gorm:"primaryKey"`
	Type         string         `gorm:"size:64;not null;index"`
	PlayerName   string         `gorm:"size:128;not null;index:idx_result_events_player"`
	PlayerNumber string         `gorm:"size:64;not null;index:idx_result_events_player"`
	Payload      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time      `gorm:"not null"`
}
