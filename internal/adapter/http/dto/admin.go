package dto

import "encoding/json"

type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required,min=8,max=128"`
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin member"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive pending"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin member"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive pending"`
	Language *string `json:"language" binding:"omitempty,oneof=en es"`
}

type RoleItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
	UserCount   int      `json:"user_count"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Permissions []string `json:"permissions" binding:"omitempty,dive,max=255"`
}

type UpdateRoleRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Permissions []string `json:"permissions" binding:"omitempty,dive,max=255"`
}

// SettingItem carries the value typed the way the setting declares it:
// a JSON bool for boolean, a number for number, a string otherwise.
type SettingItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Value       any     `json:"value"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateSettingRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Value       json.RawMessage `json:"value" binding:"required"`
	Type        *string         `json:"type" binding:"omitempty,oneof=string boolean number"`
	Category    *string         `json:"category" binding:"omitempty,max=255"`
	Description *string         `json:"description" binding:"omitempty,max=65535"`
}

type UpdateSettingRequest struct {
	Value       json.RawMessage `json:"value" binding:"omitempty"`
	Category    *string         `json:"category" binding:"omitempty,max=255"`
	Description *string         `json:"description" binding:"omitempty,max=65535"`
}

type ActivityBucketItem struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
