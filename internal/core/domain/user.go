package domain

import (
	"time"

	"github.com/google/uuid"
)

type SystemRole string

const (
	SystemRoleAdmin  SystemRole = "admin"
	SystemRoleMember SystemRole = "member"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

const (
	LanguageEn = "en"
	LanguageEs = "es"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Name         *string
	PasswordHash string
	Role         SystemRole
	Status       UserStatus
	Language     string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Email    string
	Name     *string
	Password string
	Role     *SystemRole
	Status   *UserStatus
}

// UpdateUserInput is a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Role     *SystemRole
	Status   *UserStatus
	Language *string
}

// Role is the open-ended custom role record managed under /admin/roles.
// It is a separate concept from SystemRole: permissions are free-form
// strings, not a closed enum.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Permissions []string
	UserCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateRoleInput struct {
	Name        string
	Description *string
	Permissions []string
}

type UpdateRoleInput struct {
	Name        *string
	Description *string
	Permissions []string
	// PermissionsSet distinguishes "leave permissions alone" from
	// "replace with this list" (which may be empty).
	PermissionsSet bool
}

type ActivityType string

const (
	ActivityLogin       ActivityType = "login"
	ActivityLogout      ActivityType = "logout"
	ActivityUserCreated ActivityType = "user_created"
	ActivityUserUpdated ActivityType = "user_updated"
	ActivityUserDeleted ActivityType = "user_deleted"
)

// UserActivity rows are append-only; nothing in the system mutates them
// after insert.
type UserActivity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        ActivityType
	Description *string
	CreatedAt   time.Time
}

// ActivityBucket is a per-day aggregate for the admin analytics view.
type ActivityBucket struct {
	Date  string
	Count int
}

type UserListFilter struct {
	Status   *UserStatus
	Role     *SystemRole
	SortBy   string
	SortDesc bool
	Page     int
	PerPage  int
}
