package mapper

import (
	"time"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Language:  user.Language,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.Name != nil {
		value := *user.Name
		item.Name = &value
	}

	if user.LastLogin != nil {
		value := user.LastLogin.Format(time.RFC3339)
		item.LastLogin = &value
	}

	return item
}
