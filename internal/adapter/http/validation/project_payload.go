package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

var ErrInvalidProjectPayload = errors.New("invalid project payload")

func BuildCreateProjectInput(req dto.CreateProjectRequest) (domain.CreateProjectInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	startDate, ok := parseDatePtr(req.StartDate)
	if !ok {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}
	endDate, ok := parseDatePtr(req.EndDate)
	if !ok {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}
	parentID, ok := parseUUIDPtr(req.ParentID)
	if !ok {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}
	teamMemberIDs, ok := parseUUIDList(req.TeamMemberIDs)
	if !ok {
		return domain.CreateProjectInput{}, ErrInvalidProjectPayload
	}

	input := domain.CreateProjectInput{
		Name:          name,
		Description:   req.Description,
		Progress:      req.Progress,
		StartDate:     startDate,
		EndDate:       endDate,
		ParentID:      parentID,
		TeamMemberIDs: teamMemberIDs,
	}
	if req.Status != nil {
		value := domain.ProjectStatus(*req.Status)
		input.Status = &value
	}
	if req.Priority != nil {
		value := domain.ProjectPriority(*req.Priority)
		input.Priority = &value
	}
	return input, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if !hasProjectUpdateFields(raw) {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var name *string
	if hasJSONField(raw, "name") && req.Name == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	var status *domain.ProjectStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	if req.Status != nil {
		value := domain.ProjectStatus(*req.Status)
		status = &value
	}

	var priority *domain.ProjectPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	if req.Priority != nil {
		value := domain.ProjectPriority(*req.Priority)
		priority = &value
	}

	if hasJSONField(raw, "progress") && req.Progress == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	startDate, startDateSet, ok := parseDateField(raw, "start_date", req.StartDate)
	if !ok {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	endDate, endDateSet, ok := parseDateField(raw, "end_date", req.EndDate)
	if !ok {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	parentIDSet := hasJSONField(raw, "parent_id")
	if parentIDSet && !isJSONNull(raw["parent_id"]) && req.ParentID == nil {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}
	parentID, ok := parseUUIDPtr(req.ParentID)
	if !ok {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	teamMemberIDsSet := hasJSONField(raw, "team_member_ids")
	teamMemberIDs, ok := parseUUIDList(req.TeamMemberIDs)
	if !ok {
		return domain.UpdateProjectInput{}, ErrInvalidProjectPayload
	}

	return domain.UpdateProjectInput{
		Name:             name,
		Description:      req.Description,
		DescriptionSet:   descriptionSet,
		Status:           status,
		Priority:         priority,
		Progress:         req.Progress,
		StartDate:        startDate,
		StartDateSet:     startDateSet,
		EndDate:          endDate,
		EndDateSet:       endDateSet,
		ParentID:         parentID,
		ParentIDSet:      parentIDSet,
		TeamMemberIDs:    teamMemberIDs,
		TeamMemberIDsSet: teamMemberIDsSet,
	}, nil
}

func hasProjectUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "name") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "progress") ||
		hasJSONField(raw, "start_date") ||
		hasJSONField(raw, "end_date") ||
		hasJSONField(raw, "parent_id") ||
		hasJSONField(raw, "team_member_ids")
}

func parseDatePtr(value *string) (*time.Time, bool) {
	if value == nil {
		return nil, true
	}
	parsed, ok := parseDateTime(*value)
	if !ok {
		return nil, false
	}
	return &parsed, true
}

func parseDateField(raw map[string]json.RawMessage, field string, value *string) (*time.Time, bool, bool) {
	set := hasJSONField(raw, field)
	if !set || isJSONNull(raw[field]) {
		return nil, set, true
	}
	if value == nil {
		return nil, set, false
	}
	parsed, ok := parseDateTime(*value)
	if !ok {
		return nil, set, false
	}
	return &parsed, set, true
}
