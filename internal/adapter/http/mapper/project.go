package mapper

import (
	"time"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID.String(),
		Name:      project.Name,
		Status:    string(project.Status),
		Priority:  string(project.Priority),
		Progress:  project.Progress,
		OwnerID:   project.OwnerID.String(),
		CreatedBy: project.CreatedByID.String(),
		Members:   ToMemberItems(project.Members),
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	if project.StartDate != nil {
		value := project.StartDate.Format(time.RFC3339)
		item.StartDate = &value
	}

	if project.EndDate != nil {
		value := project.EndDate.Format(time.RFC3339)
		item.EndDate = &value
	}

	if project.ParentID != nil {
		value := project.ParentID.String()
		item.ParentID = &value
	}

	if project.UpdatedByID != nil {
		value := project.UpdatedByID.String()
		item.UpdatedBy = &value
	}

	if project.DeletedAt != nil {
		value := project.DeletedAt.Format(time.RFC3339)
		item.DeletedAt = &value
	}

	if project.Owner != nil {
		owner := ToUserItem(*project.Owner)
		item.Owner = &owner
	}

	return item
}

func ToMemberItems(members []domain.ProjectMember) []dto.MemberItem {
	items := make([]dto.MemberItem, 0, len(members))
	for _, member := range members {
		items = append(items, ToMemberItem(member))
	}
	return items
}

func ToMemberItem(member domain.ProjectMember) dto.MemberItem {
	item := dto.MemberItem{
		UserID:  member.UserID.String(),
		Role:    string(member.Role),
		AddedAt: member.AddedAt.Format(time.RFC3339),
	}

	if member.User != nil {
		user := ToUserItem(*member.User)
		item.User = &user
	}

	return item
}
