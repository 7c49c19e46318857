package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/authtoken"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/password"
)

func newTestTokens() *authtoken.Manager {
	return authtoken.NewManager("test-secret", time.Minute, time.Hour)
}

func TestAuthService_Register_FirstUserBecomesAdmin(t *testing.T) {
	userRepo := new(userRepositoryMock)
	activityRepo := new(activityRepositoryMock)
	userRepo.On("Count", mock.Anything).Return(0, nil).Once()
	userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.SystemRoleAdmin && user.Status == domain.UserStatusPending
	})).Return(nil).Once()
	activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(activity domain.UserActivity) bool {
		return activity.Type == domain.ActivityUserCreated
	})).Return(nil).Once()

	svc := NewAuthService(userRepo, activityRepo, newTestTokens())

	user, pair, err := svc.Register(context.Background(), "founder@example.com", "s3cretpass", nil)
	require.NoError(t, err)
	require.Equal(t, domain.SystemRoleAdmin, user.Role)
	require.Equal(t, domain.UserStatusPending, user.Status)
	require.Equal(t, domain.LanguageEn, user.Language)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	userRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestAuthService_Register_LaterUsersAreMembers(t *testing.T) {
	userRepo := new(userRepositoryMock)
	activityRepo := new(activityRepositoryMock)
	userRepo.On("Count", mock.Anything).Return(4, nil).Once()
	userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.SystemRoleMember
	})).Return(nil).Once()
	activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewAuthService(userRepo, activityRepo, newTestTokens())

	user, _, err := svc.Register(context.Background(), "late@example.com", "s3cretpass", nil)
	require.NoError(t, err)
	require.Equal(t, domain.SystemRoleMember, user.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := password.Hash("right-password")
	require.NoError(t, err)

	userRepo := new(userRepositoryMock)
	activityRepo := new(activityRepositoryMock)
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(domain.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         domain.SystemRoleMember,
	}, nil).Once()

	svc := NewAuthService(userRepo, activityRepo, newTestTokens())

	_, _, err = svc.Login(context.Background(), "user@example.com", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmailHidesExistence(t *testing.T) {
	userRepo := new(userRepositoryMock)
	activityRepo := new(activityRepositoryMock)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(domain.User{}, domain.ErrUserNotFound).Once()

	svc := NewAuthService(userRepo, activityRepo, newTestTokens())

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_LastLoginFailureDoesNotBlock(t *testing.T) {
	hash, err := password.Hash("right-password")
	require.NoError(t, err)

	userID := uuid.New()
	userRepo := new(userRepositoryMock)
	activityRepo := new(activityRepositoryMock)
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(domain.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: hash,
		Role:         domain.SystemRoleMember,
	}, nil).Once()
	userRepo.On("SetLastLogin", mock.Anything, userID, mock.Anything).
		Return(errors.New("db is down")).Once()
	activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(activity domain.UserActivity) bool {
		return activity.Type == domain.ActivityLogin && activity.UserID == userID
	})).Return(nil).Once()

	svc := NewAuthService(userRepo, activityRepo, newTestTokens())

	user, pair, err := svc.Login(context.Background(), "user@example.com", "right-password")
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	require.NotEmpty(t, pair.AccessToken)
	userRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestAuthService_Refresh_ReReadsUserRole(t *testing.T) {
	tokens := newTestTokens()
	userID := uuid.New()
	refresh, err := tokens.GenerateRefreshToken(userID, string(domain.SystemRoleMember))
	require.NoError(t, err)

	userRepo := new(userRepositoryMock)
	activityRepo := new(activityRepositoryMock)
	// The user was promoted since the refresh token was issued.
	userRepo.On("GetByID", mock.Anything, userID).Return(domain.User{
		ID:   userID,
		Role: domain.SystemRoleAdmin,
	}, nil).Once()

	svc := NewAuthService(userRepo, activityRepo, tokens)

	access, err := svc.Refresh(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := tokens.VerifyAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, string(domain.SystemRoleAdmin), claims.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	tokens := newTestTokens()
	access, err := tokens.GenerateAccessToken(uuid.New(), string(domain.SystemRoleMember))
	require.NoError(t, err)

	svc := NewAuthService(new(userRepositoryMock), new(activityRepositoryMock), tokens)

	_, err = svc.Refresh(context.Background(), access)
	require.ErrorIs(t, err, authtoken.ErrWrongTokenUse)
}
