package validation

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

var (
	ErrInvalidUserPayload    = errors.New("invalid user payload")
	ErrInvalidRolePayload    = errors.New("invalid role payload")
	ErrInvalidSettingPayload = errors.New("invalid setting payload")
)

func BuildCreateUserInput(req dto.CreateUserRequest) (domain.CreateUserInput, error) {
	input := domain.CreateUserInput{
		Email:    strings.TrimSpace(req.Email),
		Name:     req.Name,
		Password: req.Password,
	}
	if input.Email == "" {
		return domain.CreateUserInput{}, ErrInvalidUserPayload
	}
	if req.Role != nil {
		value := domain.SystemRole(*req.Role)
		input.Role = &value
	}
	if req.Status != nil {
		value := domain.UserStatus(*req.Status)
		input.Status = &value
	}
	return input, nil
}

func BuildUpdateUserInput(req dto.UpdateUserRequest, raw map[string]json.RawMessage) (domain.UpdateUserInput, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "role") &&
		!hasJSONField(raw, "status") && !hasJSONField(raw, "language") {
		return domain.UpdateUserInput{}, ErrInvalidUserPayload
	}

	input := domain.UpdateUserInput{
		Name:     req.Name,
		Language: req.Language,
	}
	if req.Role != nil {
		value := domain.SystemRole(*req.Role)
		input.Role = &value
	}
	if req.Status != nil {
		value := domain.UserStatus(*req.Status)
		input.Status = &value
	}
	return input, nil
}

func BuildCreateRoleInput(req dto.CreateRoleRequest) (domain.CreateRoleInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateRoleInput{}, ErrInvalidRolePayload
	}
	return domain.CreateRoleInput{
		Name:        name,
		Description: req.Description,
		Permissions: req.Permissions,
	}, nil
}

func BuildUpdateRoleInput(req dto.UpdateRoleRequest, raw map[string]json.RawMessage) (domain.UpdateRoleInput, error) {
	if !hasJSONField(raw, "name") && !hasJSONField(raw, "description") && !hasJSONField(raw, "permissions") {
		return domain.UpdateRoleInput{}, ErrInvalidRolePayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateRoleInput{}, ErrInvalidRolePayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateRoleInput{}, ErrInvalidRolePayload
		}
		name = &value
	}

	return domain.UpdateRoleInput{
		Name:           name,
		Description:    req.Description,
		Permissions:    req.Permissions,
		PermissionsSet: hasJSONField(raw, "permissions"),
	}, nil
}

func BuildCreateSettingInput(req dto.CreateSettingRequest) (domain.CreateSettingInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateSettingInput{}, ErrInvalidSettingPayload
	}

	value, inferredType, err := settingValueToString(req.Value)
	if err != nil {
		return domain.CreateSettingInput{}, err
	}
	settingType := inferredType
	if req.Type != nil {
		settingType = domain.SettingType(*req.Type)
	}

	input := domain.CreateSettingInput{
		Name:        name,
		Value:       value,
		Type:        settingType,
		Description: req.Description,
	}
	if req.Category != nil {
		input.Category = *req.Category
	}
	return input, nil
}

func BuildUpdateSettingInput(req dto.UpdateSettingRequest, raw map[string]json.RawMessage) (domain.UpdateSettingInput, error) {
	if !hasJSONField(raw, "value") && !hasJSONField(raw, "category") && !hasJSONField(raw, "description") {
		return domain.UpdateSettingInput{}, ErrInvalidSettingPayload
	}

	input := domain.UpdateSettingInput{
		Category:    req.Category,
		Description: req.Description,
	}
	if hasJSONField(raw, "value") {
		value, _, err := settingValueToString(raw["value"])
		if err != nil {
			return domain.UpdateSettingInput{}, err
		}
		input.Value = &value
	}
	return input, nil
}

// settingValueToString flattens a JSON scalar to its stored string form
// and infers the setting type from the JSON kind.
func settingValueToString(raw json.RawMessage) (string, domain.SettingType, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", "", ErrInvalidSettingPayload
	}
	switch value := decoded.(type) {
	case string:
		return value, domain.SettingTypeString, nil
	case bool:
		return strconv.FormatBool(value), domain.SettingTypeBoolean, nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), domain.SettingTypeNumber, nil
	default:
		return "", "", ErrInvalidSettingPayload
	}
}
