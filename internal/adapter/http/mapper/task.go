package mapper

import (
	"time"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:           task.ID.String(),
		Title:        task.Title,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		Type:         string(task.Type),
		OwnerID:      task.OwnerID.String(),
		Assignees:    ToUserItems(task.Assignees),
		Dependencies: toDependencyItems(task.Dependencies),
		CreatedAt:    task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	if task.StartDate != nil {
		value := task.StartDate.Format(time.RFC3339)
		item.StartDate = &value
	}

	if task.EndDate != nil {
		value := task.EndDate.Format(time.RFC3339)
		item.EndDate = &value
	}

	if task.DurationMinutes != nil {
		value := *task.DurationMinutes
		item.DurationMinutes = &value
	}

	if task.Project != nil {
		item.Project = &dto.ProjectRefItem{
			ID:   task.Project.ID.String(),
			Name: task.Project.Name,
		}
	}

	if task.Owner != nil {
		owner := ToUserItem(*task.Owner)
		item.Owner = &owner
	}

	return item
}

func toDependencyItems(dependencies []domain.TaskDependency) []dto.DependencyItem {
	items := make([]dto.DependencyItem, 0, len(dependencies))
	for _, dependency := range dependencies {
		items = append(items, dto.DependencyItem{
			Task: dto.TaskRefItem{
				ID:     dependency.DependsOn.ID.String(),
				Title:  dependency.DependsOn.Title,
				Status: string(dependency.DependsOn.Status),
			},
			Type: string(dependency.Type),
		})
	}
	return items
}
