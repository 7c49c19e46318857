package domain

import (
	"time"

	"github.com/google/uuid"
)

type AnchorKind string

const (
	AnchorProject AnchorKind = "project"
	AnchorTask    AnchorKind = "task"
)

// CommentAnchor is the tagged union naming the single entity a comment
// hangs off. The storage layer keeps two nullable columns; the mutual
// exclusion lives here.
type CommentAnchor struct {
	Kind AnchorKind
	ID   uuid.UUID
}

func ProjectAnchor(id uuid.UUID) CommentAnchor {
	return CommentAnchor{Kind: AnchorProject, ID: id}
}

func TaskAnchor(id uuid.UUID) CommentAnchor {
	return CommentAnchor{Kind: AnchorTask, ID: id}
}

type Comment struct {
	ID        uuid.UUID
	Text      string
	AuthorID  uuid.UUID
	Anchor    CommentAnchor
	ParentID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	Author  *User
	Replies []Comment
}

type CreateCommentInput struct {
	Text     string
	Anchor   CommentAnchor
	ParentID *uuid.UUID
}

type UpdateCommentInput struct {
	Text string
}
