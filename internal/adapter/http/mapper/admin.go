package mapper

import (
	"strconv"
	"time"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/paginator"
)

func ToUserPage(page paginator.Page[domain.User]) paginator.Page[dto.UserItem] {
	return paginator.NewPage(ToUserItems(page.Items), page.Total, page.Page, page.PerPage)
}

func ToProjectPage(page paginator.Page[domain.Project]) paginator.Page[dto.ProjectItem] {
	return paginator.NewPage(ToProjectItems(page.Items), page.Total, page.Page, page.PerPage)
}

func ToTaskPage(page paginator.Page[domain.Task]) paginator.Page[dto.TaskItem] {
	return paginator.NewPage(ToTaskItems(page.Items), page.Total, page.Page, page.PerPage)
}

func ToSettingPage(page paginator.Page[domain.SystemSetting]) paginator.Page[dto.SettingItem] {
	return paginator.NewPage(ToSettingItems(page.Items), page.Total, page.Page, page.PerPage)
}

func ToRoleItems(roles []domain.Role) []dto.RoleItem {
	items := make([]dto.RoleItem, 0, len(roles))
	for _, role := range roles {
		items = append(items, ToRoleItem(role))
	}
	return items
}

func ToRoleItem(role domain.Role) dto.RoleItem {
	item := dto.RoleItem{
		ID:          role.ID.String(),
		Name:        role.Name,
		Permissions: role.Permissions,
		UserCount:   role.UserCount,
		CreatedAt:   role.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   role.UpdatedAt.Format(time.RFC3339),
	}
	if item.Permissions == nil {
		item.Permissions = []string{}
	}

	if role.Description != nil {
		value := *role.Description
		item.Description = &value
	}

	return item
}

func ToSettingItems(settings []domain.SystemSetting) []dto.SettingItem {
	items := make([]dto.SettingItem, 0, len(settings))
	for _, setting := range settings {
		items = append(items, ToSettingItem(setting))
	}
	return items
}

func ToSettingItem(setting domain.SystemSetting) dto.SettingItem {
	item := dto.SettingItem{
		ID:        setting.ID.String(),
		Name:      setting.Name,
		Value:     settingValue(setting),
		Type:      string(setting.Type),
		Category:  setting.Category,
		CreatedAt: setting.CreatedAt.Format(time.RFC3339),
		UpdatedAt: setting.UpdatedAt.Format(time.RFC3339),
	}

	if setting.Description != nil {
		value := *setting.Description
		item.Description = &value
	}

	return item
}

// settingValue turns the stored string back into the declared type; a
// value that no longer parses falls back to the raw string.
func settingValue(setting domain.SystemSetting) any {
	switch setting.Type {
	case domain.SettingTypeBoolean:
		return setting.Value == "true"
	case domain.SettingTypeNumber:
		if number, err := strconv.ParseFloat(setting.Value, 64); err == nil {
			return number
		}
	}
	return setting.Value
}

func ToActivityBucketItems(buckets []domain.ActivityBucket) []dto.ActivityBucketItem {
	items := make([]dto.ActivityBucketItem, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, dto.ActivityBucketItem{Date: bucket.Date, Count: bucket.Count})
	}
	return items
}
