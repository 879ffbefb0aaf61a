package server

import (
	"encoding/json"
	"unicode/utf8"

	"escape-tracker/internal/db"
	"escape-tracker/internal/registry"

	"gorm.io/datatypes"
)

const (
	maxEventNameLength   = 128
	maxEventNumberLength = 64
)

// persistEvent appends a registry change to the audit log. The log is never
// read back into the registry.
func (s *Server) persistEvent(event registry.Event) error {
	if s.db == nil {
		return nil
	}
	payload, err := json.Marshal(event.Record)
	if err != nil {
		return err
	}
	record := db.ResultEvent{
		Type:         string(event.Type),
		PlayerName:   truncateRunes(event.Record.PlayerName.String(), maxEventNameLength),
		PlayerNumber: truncateRunes(event.Record.PlayerNumber.String(), maxEventNumberLength),
		Payload:      datatypes.JSON(payload),
	}
	return s.db.Create(&record).Error
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit])
}
