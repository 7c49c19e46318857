package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListPaged(ctx context.Context, filter domain.UserListFilter) ([]domain.User, int, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, user domain.User) error
	// Delete removes the row; activity records go with it (FK cascade).
	Delete(ctx context.Context, id uuid.UUID) error
	SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity domain.UserActivity) error
	CountByDay(ctx context.Context, since time.Time) ([]domain.ActivityBucket, error)
}

type RoleRepository interface {
	Insert(ctx context.Context, role domain.Role) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Role, error)
	GetByName(ctx context.Context, name string) (domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, role domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TokenPair is what register/login hand back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, email, password string, name *string) (domain.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (domain.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
