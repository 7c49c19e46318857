package tests

import (
	"context"
	"encoding/json"
	"errors"
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

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListForProject(ctx context.Context, userID, projectID uuid.UUID) ([]domain.Task, error) {
	args := m.Called(ctx, userID, projectID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, userID, projectID uuid.UUID, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, projectID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, userID, taskID uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, userID, taskID uuid.UUID, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func testTokens() *authtoken.Manager {
	return authtoken.NewManager("handler-test-secret", time.Minute, time.Hour)
}

func bearerFor(t *testing.T, tokens *authtoken.Manager, userID uuid.UUID, role string) string {
	t.Helper()

	token, err := tokens.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func newTaskRouter(tokens *authtoken.Manager, handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api/tasks", middleware.LanguageMiddleware(), middleware.RequireAuth(tokens))
	group.GET("/project/:projectId/tasks", handler.ListProjectTasks)
	group.POST("/project/:projectId/tasks", handler.CreateTask)
	group.GET("/:id", handler.GetTask)
	group.PUT("/:id", handler.UpdateTask)
	group.DELETE("/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_ListProjectTasks_Success(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	depID := uuid.New()
	description := "ship endpoint"
	dueDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 8, 13, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 8, 13, 11, 20, 30, 0, time.UTC)
	task := domain.Task{
		ID:          uuid.New(),
		Title:       "Build projects API",
		Description: &description,
		Status:      domain.TaskStatusInProgress,
		Priority:    domain.TaskPriorityHigh,
		Type:        domain.TaskTypeTask,
		DueDate:     &dueDate,
		ProjectID:   projectID,
		OwnerID:     userID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Project:     &domain.ProjectRef{ID: projectID, Name: "Spark"},
		Dependencies: []domain.TaskDependency{
			{
				DependsOn: domain.TaskRef{ID: depID, Title: "Design schema", Status: domain.TaskStatusDone},
				Type:      domain.DependencyFinishToStart,
			},
		},
	}

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListForProject", mock.Anything, userID, projectID).
		Return([]domain.Task{task}, nil).Once()

	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/project/"+projectID.String()+"/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, task.ID.String(), got[0].ID)
	require.Equal(t, "Build projects API", got[0].Title)
	require.Equal(t, "ship endpoint", *got[0].Description)
	require.Equal(t, "in_progress", got[0].Status)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, "2026-09-20", *got[0].DueDate)
	require.Equal(t, "2026-08-13T10:20:30Z", got[0].CreatedAt)
	require.NotNil(t, got[0].Project)
	require.Equal(t, "Spark", got[0].Project.Name)
	require.Len(t, got[0].Dependencies, 1)
	require.Equal(t, depID.String(), got[0].Dependencies[0].Task.ID)
	require.Equal(t, "finish-to-start", got[0].Dependencies[0].Type)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_ProjectNotFound(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListForProject", mock.Anything, userID, projectID).
		Return(nil, domain.ErrProjectNotFound).Once()

	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/project/"+projectID.String()+"/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.CodeNotFound, got.Code)
	require.Equal(t, "Project not found or no access.", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListProjectTasks_NoToken(t *testing.T) {
	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(new(taskServiceMock)))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/project/"+uuid.NewString()+"/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.CodeAuthRequired, got.Code)
}

func TestTaskHandler_CreateTask_Forbidden(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, userID, projectID, mock.Anything).
		Return(domain.Task{}, domain.ErrForbidden).Once()

	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(serviceMock))

	body := `{"title": "not allowed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/project/"+projectID.String()+"/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.CodeForbidden, got.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidStatus(t *testing.T) {
	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(new(taskServiceMock)))

	body := `{"title": "x", "status": "someday"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/project/"+uuid.NewString()+"/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, uuid.New(), "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.CodeValidation, got.Code)
	require.Equal(t, "Invalid task payload.", got.Message)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(new(taskServiceMock)))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/not-a-uuid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, uuid.New(), "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid identifier.", got.Message)
}

func TestTaskHandler_UpdateTask_NullDescriptionClears(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, userID, taskID, mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.DescriptionSet && input.Description == nil &&
			input.Title != nil && *input.Title == "still here"
	})).Return(domain.Task{ID: taskID, Title: "still here"}, nil).Once()

	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(serviceMock))

	body := `{"title": "still here", "description": null}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/"+taskID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, userID, taskID).Return(nil).Once()

	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+taskID.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_InternalError(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, userID, taskID).Return(errors.New("db is down")).Once()

	tokens := testTokens()
	router := newTaskRouter(tokens, handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+taskID.String(), nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", bearerFor(t, tokens, userID, "member"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, apierrors.CodeInternal, got.Code)
	serviceMock.AssertExpectations(t)
}
