package mapper

import (
	"time"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	item := dto.CommentItem{
		ID:        comment.ID.String(),
		Text:      comment.Text,
		AuthorID:  comment.AuthorID.String(),
		Replies:   ToCommentItems(comment.Replies),
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}

	switch comment.Anchor.Kind {
	case domain.AnchorProject:
		value := comment.Anchor.ID.String()
		item.ProjectID = &value
	case domain.AnchorTask:
		value := comment.Anchor.ID.String()
		item.TaskID = &value
	}

	if comment.ParentID != nil {
		value := comment.ParentID.String()
		item.ParentID = &value
	}

	if comment.Author != nil {
		author := ToUserItem(*comment.Author)
		item.Author = &author
	}

	return item
}
