package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
)

func newCommentServiceForTest(commentRepo *commentRepositoryMock, taskRepo *taskRepositoryMock, projectRepo *projectRepositoryMock) *CommentService {
	projectService := NewProjectService(projectRepo, new(userRepositoryMock))
	return NewCommentService(commentRepo, taskRepo, projectRepo, projectService)
}

func TestCommentService_Create_RejectsUnknownAnchorKind(t *testing.T) {
	svc := newCommentServiceForTest(new(commentRepositoryMock), new(taskRepositoryMock), new(projectRepositoryMock))

	_, err := svc.Create(context.Background(), uuid.New(), domain.CreateCommentInput{
		Text:   "hello",
		Anchor: domain.CommentAnchor{Kind: "milestone", ID: uuid.New()},
	})
	require.ErrorIs(t, err, domain.ErrInvalidAnchor)
}

func TestCommentService_Create_OnTaskResolvesProject(t *testing.T) {
	ownerID := uuid.New()
	project := domain.Project{ID: uuid.New(), OwnerID: ownerID}
	task := domain.Task{ID: uuid.New(), ProjectID: project.ID}

	commentRepo := new(commentRepositoryMock)
	taskRepo := new(taskRepositoryMock)
	projectRepo := new(projectRepositoryMock)
	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil).Once()
	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil).Once()
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(comment domain.Comment) bool {
		return comment.AuthorID == ownerID &&
			comment.Anchor == domain.TaskAnchor(task.ID) &&
			comment.ParentID == nil
	})).Return(domain.Comment{ID: uuid.New()}, nil).Once()

	svc := newCommentServiceForTest(commentRepo, taskRepo, projectRepo)

	_, err := svc.Create(context.Background(), ownerID, domain.CreateCommentInput{
		Text:   "looks good",
		Anchor: domain.TaskAnchor(task.ID),
	})
	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestCommentService_Create_ReplyRequiresExistingParent(t *testing.T) {
	ownerID := uuid.New()
	project := domain.Project{ID: uuid.New(), OwnerID: ownerID}
	parentID := uuid.New()

	commentRepo := new(commentRepositoryMock)
	projectRepo := new(projectRepositoryMock)
	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil).Once()
	commentRepo.On("GetByID", mock.Anything, parentID).
		Return(domain.Comment{}, domain.ErrCommentNotFound).Once()

	svc := newCommentServiceForTest(commentRepo, new(taskRepositoryMock), projectRepo)

	_, err := svc.Create(context.Background(), ownerID, domain.CreateCommentInput{
		Text:     "re: hello",
		Anchor:   domain.ProjectAnchor(project.ID),
		ParentID: &parentID,
	})
	require.ErrorIs(t, err, domain.ErrCommentNotFound)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Get_InvisibleAnchorHidesComment(t *testing.T) {
	userID := uuid.New()
	project := domain.Project{ID: uuid.New(), OwnerID: uuid.New()}
	comment := domain.Comment{ID: uuid.New(), Anchor: domain.ProjectAnchor(project.ID), AuthorID: uuid.New()}

	commentRepo := new(commentRepositoryMock)
	projectRepo := new(projectRepositoryMock)
	commentRepo.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil).Once()
	projectRepo.On("MemberRole", mock.Anything, project.ID, userID).
		Return(domain.ProjectRole(""), false, nil).Once()

	svc := newCommentServiceForTest(commentRepo, new(taskRepositoryMock), projectRepo)

	_, err := svc.Get(context.Background(), userID, comment.ID)
	require.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestCommentService_Update_AuthorOnly(t *testing.T) {
	editorID := uuid.New()
	project := domain.Project{ID: uuid.New(), OwnerID: uuid.New()}
	comment := domain.Comment{ID: uuid.New(), AuthorID: uuid.New(), Anchor: domain.ProjectAnchor(project.ID)}

	commentRepo := new(commentRepositoryMock)
	projectRepo := new(projectRepositoryMock)
	commentRepo.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil).Once()
	projectRepo.On("MemberRole", mock.Anything, project.ID, editorID).
		Return(domain.ProjectRoleEditor, true, nil).Once()

	svc := newCommentServiceForTest(commentRepo, new(taskRepositoryMock), projectRepo)

	_, err := svc.Update(context.Background(), editorID, comment.ID, domain.UpdateCommentInput{Text: "hijack"})
	require.ErrorIs(t, err, domain.ErrForbidden)
	commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommentService_Delete_ProjectOwnerMayModerate(t *testing.T) {
	ownerID := uuid.New()
	project := domain.Project{ID: uuid.New(), OwnerID: ownerID}
	comment := domain.Comment{ID: uuid.New(), AuthorID: uuid.New(), Anchor: domain.ProjectAnchor(project.ID)}

	commentRepo := new(commentRepositoryMock)
	projectRepo := new(projectRepositoryMock)
	commentRepo.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil).Once()
	commentRepo.On("Delete", mock.Anything, comment.ID).Return(nil).Once()

	svc := newCommentServiceForTest(commentRepo, new(taskRepositoryMock), projectRepo)

	require.NoError(t, svc.Delete(context.Background(), ownerID, comment.ID))
	commentRepo.AssertExpectations(t)
}

func TestCommentService_Delete_EditorCannotModerateOthers(t *testing.T) {
	editorID := uuid.New()
	project := domain.Project{ID: uuid.New(), OwnerID: uuid.New()}
	comment := domain.Comment{ID: uuid.New(), AuthorID: uuid.New(), Anchor: domain.ProjectAnchor(project.ID)}

	commentRepo := new(commentRepositoryMock)
	projectRepo := new(projectRepositoryMock)
	commentRepo.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil).Once()
	projectRepo.On("MemberRole", mock.Anything, project.ID, editorID).
		Return(domain.ProjectRoleEditor, true, nil).Once()

	svc := newCommentServiceForTest(commentRepo, new(taskRepositoryMock), projectRepo)

	err := svc.Delete(context.Background(), editorID, comment.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
	commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCommentService_Delete_TaskOwnerMayModerate(t *testing.T) {
	taskOwnerID := uuid.New()
	project := domain.Project{ID: uuid.New(), OwnerID: uuid.New()}
	task := domain.Task{ID: uuid.New(), ProjectID: project.ID, OwnerID: taskOwnerID}
	comment := domain.Comment{ID: uuid.New(), AuthorID: uuid.New(), Anchor: domain.TaskAnchor(task.ID)}

	commentRepo := new(commentRepositoryMock)
	taskRepo := new(taskRepositoryMock)
	projectRepo := new(projectRepositoryMock)
	commentRepo.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
	taskRepo.On("GetByID", mock.Anything, task.ID).Return(task, nil).Once()
	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil).Once()
	projectRepo.On("MemberRole", mock.Anything, project.ID, taskOwnerID).
		Return(domain.ProjectRoleEditor, true, nil).Once()
	commentRepo.On("Delete", mock.Anything, comment.ID).Return(nil).Once()

	svc := newCommentServiceForTest(commentRepo, taskRepo, projectRepo)

	require.NoError(t, svc.Delete(context.Background(), taskOwnerID, comment.ID))
	commentRepo.AssertExpectations(t)
}
