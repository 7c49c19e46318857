package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/dto"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/handlers"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/apierrors"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/authtoken"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/translator"
)

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) Create(ctx context.Context, userID uuid.UUID, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) Get(ctx context.Context, userID, projectID uuid.UUID) (domain.Project, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) Update(ctx context.Context, userID, projectID uuid.UUID, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, userID, projectID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	return m.Called(ctx, userID, projectID).Error(0)
}

func (m *projectServiceMock) Members(ctx context.Context, userID, projectID uuid.UUID) ([]domain.ProjectMember, error) {
	args := m.Called(ctx, userID, projectID)

	var members []domain.ProjectMember
	if value := args.Get(0); value != nil {
		members = value.([]domain.ProjectMember)
	}
	return members, args.Error(1)
}

func (m *projectServiceMock) AddMember(ctx context.Context, userID, projectID, memberID uuid.UUID, role domain.ProjectRole) (domain.Project, error) {
	args := m.Called(ctx, userID, projectID, memberID, role)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) RemoveMember(ctx context.Context, userID, projectID, memberID uuid.UUID) error {
	return m.Called(ctx, userID, projectID, memberID).Error(0)
}

func (m *projectServiceMock) Access(ctx context.Context, userID uuid.UUID, project domain.Project) (domain.AccessLevel, error) {
	args := m.Called(ctx, userID, project)
	return args.Get(0).(domain.AccessLevel), args.Error(1)
}

func newProjectRouter(tokens *authtoken.Manager, handler *handlers.ProjectHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api/projects", middleware.LanguageMiddleware(), middleware.RequireAuth(tokens))
	group.GET("", handler.ListProjects)
	group.POST("", handler.CreateProject)
	group.GET("/:id", handler.GetProject)
	group.PUT("/:id", handler.UpdateProject)
	group.DELETE("/:id", handler.DeleteProject)
	group.GET("/:id/members", handler.ListMembers)
	group.POST("/:id/members", handler.AddMember)
	group.DELETE("/:id/members/:userId", handler.RemoveMember)
	return router
}

func TestProjectHandler_ListProjects_Success(t *testing.T) {
	userID := uuid.New()
	createdAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	name := "Spark"
	project := domain.Project{
		ID:        uuid.New(),
		Name:      name,
		Status:    domain.ProjectStatusActive,
		Priority:  domain.ProjectPriorityHigh,
		Progress:  40,
		OwnerID:   userID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Members: []domain.ProjectMember{
			{ProjectID: uuid.New(), UserID: userID, Role: domain.ProjectRoleEditor, AddedAt: createdAt},
		},
	}

	serviceMock := new(projectServiceMock)
	serviceMock.On("List", mock.Anything, userID).Return([]domain.Project{project}, nil).Once()

	tokens := testTokens()
	router := newProjectRouter(tokens, handlers.NewProjectHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ProjectItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Spark", got[0].Name)
	require.Equal(t, "active", got[0].Status)
	require.Equal(t, 40, got[0].Progress)
	require.Len(t, got[0].Members, 1)
	require.Equal(t, "editor", got[0].Members[0].Role)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_CreateProject_Success(t *testing.T) {
	userID := uuid.New()

	serviceMock := new(projectServiceMock)
	serviceMock.On("Create", mock.Anything, userID, mock.MatchedBy(func(input domain.CreateProjectInput) bool {
		return input.Name == "New thing" && len(input.TeamMemberIDs) == 1
	})).Return(domain.Project{ID: uuid.New(), Name: "New thing", OwnerID: userID}, nil).Once()

	tokens := testTokens()
	router := newProjectRouter(tokens, handlers.NewProjectHandler(serviceMock))

	body := `{"name": "New thing", "team_member_ids": ["` + uuid.NewString() + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_UpdateProject_ParentCycle(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	serviceMock := new(projectServiceMock)
	serviceMock.On("Update", mock.Anything, userID, projectID, mock.Anything).
		Return(domain.Project{}, domain.ErrParentCycle).Once()

	tokens := testTokens()
	router := newProjectRouter(tokens, handlers.NewProjectHandler(serviceMock))

	body := `{"parent_id": "` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/"+projectID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "A project cannot be its own ancestor.", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_RemoveMember_OwnerNotRemovable(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	serviceMock := new(projectServiceMock)
	serviceMock.On("RemoveMember", mock.Anything, userID, projectID, userID).
		Return(domain.ErrOwnerNotRemovable).Once()

	tokens := testTokens()
	router := newProjectRouter(tokens, handlers.NewProjectHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/"+projectID.String()+"/members/"+userID.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "The project owner cannot be removed from the project.", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_AddMember_UnknownUser(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	memberID := uuid.New()

	serviceMock := new(projectServiceMock)
	serviceMock.On("AddMember", mock.Anything, userID, projectID, memberID, domain.ProjectRoleEditor).
		Return(domain.Project{}, domain.ErrUserNotFound).Once()

	tokens := testTokens()
	router := newProjectRouter(tokens, handlers.NewProjectHandler(serviceMock))

	body := `{"user_id": "` + memberID.String() + `", "role": "editor"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects/"+projectID.String()+"/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User not found.", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestProjectHandler_GetProject_TranslatesSpanish(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	serviceMock := new(projectServiceMock)
	serviceMock.On("Get", mock.Anything, userID, projectID).
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	tokens := testTokens()
	router := newProjectRouter(tokens, handlers.NewProjectHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/"+projectID.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEs)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Proyecto no encontrado o sin acceso.", got.Message)
	serviceMock.AssertExpectations(t)
}
