package validation

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JSON bodies are decoded twice: once into the typed request and once
// into a raw field map, so "field absent", "field null" and "field set"
// stay distinguishable for partial updates.

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDateTime(value string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func parseUUIDList(values []string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func parseUUIDPtr(value *string) (*uuid.UUID, bool) {
	if value == nil {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, false
	}
	return &id, true
}
