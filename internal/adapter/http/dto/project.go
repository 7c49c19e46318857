package dto

type ProjectItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	Progress    int          `json:"progress"`
	StartDate   *string      `json:"start_date,omitempty"`
	EndDate     *string      `json:"end_date,omitempty"`
	ParentID    *string      `json:"parent_id,omitempty"`
	OwnerID     string       `json:"owner_id"`
	Owner       *UserItem    `json:"owner,omitempty"`
	Members     []MemberItem `json:"team_members"`
	CreatedBy   string       `json:"created_by"`
	UpdatedBy   *string      `json:"updated_by,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	DeletedAt   *string      `json:"deleted_at,omitempty"`
}

type MemberItem struct {
	UserID  string    `json:"user_id"`
	Role    string    `json:"role"`
	AddedAt string    `json:"added_at"`
	User    *UserItem `json:"user,omitempty"`
}

type CreateProjectRequest struct {
	Name          string   `json:"name" binding:"required,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=65535"`
	Status        *string  `json:"status" binding:"omitempty,oneof=planning active on-hold completed"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Progress      *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	StartDate     *string  `json:"start_date" binding:"omitempty"`
	EndDate       *string  `json:"end_date" binding:"omitempty"`
	ParentID      *string  `json:"parent_id" binding:"omitempty,uuid"`
	TeamMemberIDs []string `json:"team_member_ids" binding:"omitempty,dive,uuid"`
}

type UpdateProjectRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=255"`
	Description   *string  `json:"description" binding:"omitempty,max=65535"`
	Status        *string  `json:"status" binding:"omitempty,oneof=planning active on-hold completed"`
	Priority      *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Progress      *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	StartDate     *string  `json:"start_date" binding:"omitempty"`
	EndDate       *string  `json:"end_date" binding:"omitempty"`
	ParentID      *string  `json:"parent_id" binding:"omitempty,uuid"`
	TeamMemberIDs []string `json:"team_member_ids" binding:"omitempty,dive,uuid"`
}

type AddMemberRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid"`
	Role   *string `json:"role" binding:"omitempty,oneof=viewer editor"`
}
