package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/authtoken"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/password"
)

type AuthService struct {
	userRepository     ports.UserRepository
	activityRepository ports.ActivityRepository
	tokens             *authtoken.Manager
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, activityRepository ports.ActivityRepository, tokens *authtoken.Manager) *AuthService {
	return &AuthService{
		userRepository:     userRepository,
		activityRepository: activityRepository,
		tokens:             tokens,
	}
}

// Register creates the account and signs it in. The very first account
// becomes a system admin; everyone after that starts as a pending
// member.
func (s *AuthService) Register(ctx context.Context, email, pass string, name *string) (domain.User, ports.TokenPair, error) {
	hash, err := password.Hash(pass)
	if err != nil {
		return domain.User{}, ports.TokenPair{}, err
	}

	existing, err := s.userRepository.Count(ctx)
	if err != nil {
		return domain.User{}, ports.TokenPair{}, err
	}
	role := domain.SystemRoleMember
	if existing == 0 {
		role = domain.SystemRoleAdmin
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.UserStatusPending,
		Language:     domain.LanguageEn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = s.userRepository.Insert(ctx, user); err != nil {
		return domain.User{}, ports.TokenPair{}, err
	}

	s.recordActivity(ctx, user.ID, domain.ActivityUserCreated, nil)

	pair, err := s.tokenPair(user)
	if err != nil {
		return domain.User{}, ports.TokenPair{}, err
	}
	return user, pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, pass string) (domain.User, ports.TokenPair, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, ports.TokenPair{}, domain.ErrInvalidCredentials
	}
	if !password.Verify(pass, user.PasswordHash) {
		return domain.User{}, ports.TokenPair{}, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err = s.userRepository.SetLastLogin(ctx, user.ID, now); err != nil {
		zap.L().Warn("failed to record last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
	user.LastLogin = &now

	s.recordActivity(ctx, user.ID, domain.ActivityLogin, nil)

	pair, err := s.tokenPair(user)
	if err != nil {
		return domain.User{}, ports.TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh trades a valid refresh token for a fresh access token. The
// user is re-read so a role change or deletion takes effect here.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", authtoken.ErrInvalidToken
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.tokens.GenerateAccessToken(user.ID, string(user.Role))
}

func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	s.recordActivity(ctx, userID, domain.ActivityLogout, nil)
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

func (s *AuthService) tokenPair(user domain.User) (ports.TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, string(user.Role))
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// recordActivity is best-effort; a failed audit insert never fails the
// request it annotates.
func (s *AuthService) recordActivity(ctx context.Context, userID uuid.UUID, activityType domain.ActivityType, description *string) {
	err := s.activityRepository.Insert(ctx, domain.UserActivity{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        activityType,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		zap.L().Warn("failed to record user activity",
			zap.String("user_id", userID.String()),
			zap.String("activity", string(activityType)),
			zap.Error(err))
	}
}
