package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, ok := parseDatePtr(req.DueDate)
	if !ok {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	startDate, ok := parseDatePtr(req.StartDate)
	if !ok {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	endDate, ok := parseDatePtr(req.EndDate)
	if !ok {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	assigneeIDs, ok := parseUUIDList(req.AssigneeIDs)
	if !ok {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	dependsOnIDs, ok := parseUUIDList(req.DependsOnIDs)
	if !ok {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:           title,
		Description:     req.Description,
		DueDate:         dueDate,
		StartDate:       startDate,
		EndDate:         endDate,
		DurationMinutes: req.DurationMinutes,
		AssigneeIDs:     assigneeIDs,
		DependsOnIDs:    dependsOnIDs,
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		input.Status = &value
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		input.Priority = &value
	}
	if req.Type != nil {
		value := domain.TaskType(*req.Type)
		input.Type = &value
	}
	if req.DependencyType != nil {
		value := domain.DependencyType(*req.DependencyType)
		input.DependencyType = &value
	}
	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var taskType *domain.TaskType
	if hasJSONField(raw, "type") && req.Type == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Type != nil {
		value := domain.TaskType(*req.Type)
		taskType = &value
	}

	dueDate, dueDateSet, ok := parseDateField(raw, "due_date", req.DueDate)
	if !ok {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	startDate, startDateSet, ok := parseDateField(raw, "start_date", req.StartDate)
	if !ok {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	endDate, endDateSet, ok := parseDateField(raw, "end_date", req.EndDate)
	if !ok {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	durationMinutesSet := hasJSONField(raw, "duration_minutes")
	if durationMinutesSet && !isJSONNull(raw["duration_minutes"]) && req.DurationMinutes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	assigneeIDsSet := hasJSONField(raw, "assignee_ids")
	assigneeIDs, ok := parseUUIDList(req.AssigneeIDs)
	if !ok {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	dependsOnIDsSet := hasJSONField(raw, "depends_on_task_ids")
	dependsOnIDs, ok := parseUUIDList(req.DependsOnIDs)
	if !ok {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dependencyType *domain.DependencyType
	if req.DependencyType != nil {
		value := domain.DependencyType(*req.DependencyType)
		dependencyType = &value
	}

	return domain.UpdateTaskInput{
		Title:              title,
		Description:        req.Description,
		DescriptionSet:     descriptionSet,
		Status:             status,
		Priority:           priority,
		Type:               taskType,
		DueDate:            dueDate,
		DueDateSet:         dueDateSet,
		StartDate:          startDate,
		StartDateSet:       startDateSet,
		EndDate:            endDate,
		EndDateSet:         endDateSet,
		DurationMinutes:    req.DurationMinutes,
		DurationMinutesSet: durationMinutesSet,
		AssigneeIDs:        assigneeIDs,
		AssigneeIDsSet:     assigneeIDsSet,
		DependsOnIDs:       dependsOnIDs,
		DependsOnIDsSet:    dependsOnIDsSet,
		DependencyType:     dependencyType,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "status") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "type") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "start_date") ||
		hasJSONField(raw, "end_date") ||
		hasJSONField(raw, "duration_minutes") ||
		hasJSONField(raw, "assignee_ids") ||
		hasJSONField(raw, "depends_on_task_ids")
}
