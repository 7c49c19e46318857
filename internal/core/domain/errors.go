package domain

import "errors"

// Not-found is deliberately also the answer for entities the caller is
// not allowed to know exist (soft-deleted, or no membership). Forbidden
// is reserved for entities the caller can see but not touch.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrRoleNotFound    = errors.New("role not found")
	ErrSettingNotFound = errors.New("setting not found")

	ErrForbidden          = errors.New("forbidden")
	ErrOwnerNotRemovable  = errors.New("project owner cannot be removed")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken       = errors.New("email already registered")
	ErrRoleNameTaken    = errors.New("role name already exists")
	ErrSettingNameTaken = errors.New("setting name already exists")

	ErrInvalidAnchor       = errors.New("comment must reference exactly one of project or task")
	ErrParentCycle         = errors.New("project cannot be its own ancestor")
	ErrInvalidSettingValue = errors.New("setting value does not match its type")
)
