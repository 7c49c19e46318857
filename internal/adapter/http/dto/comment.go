package dto

type CommentItem struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	AuthorID  string        `json:"author_id"`
	Author    *UserItem     `json:"author,omitempty"`
	ProjectID *string       `json:"project_id,omitempty"`
	TaskID    *string       `json:"task_id,omitempty"`
	ParentID  *string       `json:"parent_id,omitempty"`
	Replies   []CommentItem `json:"replies"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

type CreateCommentRequest struct {
	Text     string  `json:"text" binding:"required,max=65535"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required,max=65535"`
}
