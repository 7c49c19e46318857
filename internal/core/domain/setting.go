package domain

import (
	"time"

	"github.com/google/uuid"
)

type SettingType string

const (
	SettingTypeString  SettingType = "string"
	SettingTypeBoolean SettingType = "boolean"
	SettingTypeNumber  SettingType = "number"
)

// SystemSetting stores its value string-serialized; typed coercion
// happens at the read/write boundary, not here.
type SystemSetting struct {
	ID          uuid.UUID
	Name        string
	Value       string
	Type        SettingType
	Category    string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateSettingInput struct {
	Name        string
	Value       string
	Type        SettingType
	Category    string
	Description *string
}

type UpdateSettingInput struct {
	Value       *string
	Description *string
	Category    *string
}

type SettingListFilter struct {
	Category *string
	SortBy   string
	SortDesc bool
	Page     int
	PerPage  int
}
