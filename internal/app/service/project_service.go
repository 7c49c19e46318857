package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
	userRepository    ports.UserRepository
}

var _ ports.ProjectService = (*ProjectService)(nil)

func NewProjectService(projectRepository ports.ProjectRepository, userRepository ports.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepository: projectRepository,
		userRepository:    userRepository,
	}
}

// Access resolves the caller's relationship to a project. Ownership
// wins over any membership row; otherwise the membership role decides.
func (s *ProjectService) Access(ctx context.Context, userID uuid.UUID, project domain.Project) (domain.AccessLevel, error) {
	if project.OwnerID == userID {
		return domain.AccessOwner, nil
	}
	role, found, err := s.projectRepository.MemberRole(ctx, project.ID, userID)
	if err != nil {
		return domain.AccessNone, err
	}
	if !found {
		return domain.AccessNone, nil
	}
	if role == domain.ProjectRoleEditor {
		return domain.AccessEditor, nil
	}
	return domain.AccessViewer, nil
}

func (s *ProjectService) List(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	return s.projectRepository.ListForUser(ctx, userID)
}

func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, input domain.CreateProjectInput) (domain.Project, error) {
	if input.ParentID != nil {
		exists, err := s.projectRepository.Exists(ctx, *input.ParentID)
		if err != nil {
			return domain.Project{}, err
		}
		if !exists {
			return domain.Project{}, domain.ErrProjectNotFound
		}
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Status:      domain.ProjectStatusPlanning,
		Priority:    domain.ProjectPriorityMedium,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		ParentID:    input.ParentID,
		OwnerID:     userID,
		CreatedByID: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	return s.projectRepository.Create(ctx, project, input.TeamMemberIDs)
}

func (s *ProjectService) Get(ctx context.Context, userID, projectID uuid.UUID) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	access, err := s.Access(ctx, userID, project)
	if err != nil {
		return domain.Project{}, err
	}
	if !access.CanRead() {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, projectID uuid.UUID, input domain.UpdateProjectInput) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	access, err := s.Access(ctx, userID, project)
	if err != nil {
		return domain.Project{}, err
	}
	if !access.CanRead() {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if !access.CanWrite() {
		return domain.Project{}, domain.ErrForbidden
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.DescriptionSet {
		project.Description = input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.StartDateSet {
		project.StartDate = input.StartDate
	}
	if input.EndDateSet {
		project.EndDate = input.EndDate
	}
	if input.ParentIDSet {
		if input.ParentID != nil {
			exists, existsErr := s.projectRepository.Exists(ctx, *input.ParentID)
			if existsErr != nil {
				return domain.Project{}, existsErr
			}
			if !exists {
				return domain.Project{}, domain.ErrProjectNotFound
			}
			cycle, cycleErr := s.wouldCycle(ctx, projectID, *input.ParentID)
			if cycleErr != nil {
				return domain.Project{}, cycleErr
			}
			if cycle {
				return domain.Project{}, domain.ErrParentCycle
			}
		}
		project.ParentID = input.ParentID
	}
	project.UpdatedByID = &userID

	var members *[]uuid.UUID
	if input.TeamMemberIDsSet {
		ids := input.TeamMemberIDs
		if ids == nil {
			ids = []uuid.UUID{}
		}
		members = &ids
	}

	if err = s.projectRepository.Update(ctx, project, members); err != nil {
		return domain.Project{}, err
	}
	return s.projectRepository.GetByID(ctx, projectID)
}

func (s *ProjectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	access, err := s.Access(ctx, userID, project)
	if err != nil {
		return err
	}
	if !access.CanRead() {
		return domain.ErrProjectNotFound
	}
	if access != domain.AccessOwner {
		return domain.ErrForbidden
	}
	return s.projectRepository.SoftDelete(ctx, projectID, userID)
}

func (s *ProjectService) Members(ctx context.Context, userID, projectID uuid.UUID) ([]domain.ProjectMember, error) {
	if _, err := s.Get(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.projectRepository.ListMembers(ctx, projectID)
}

func (s *ProjectService) AddMember(ctx context.Context, userID, projectID, memberID uuid.UUID, role domain.ProjectRole) (domain.Project, error) {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	access, err := s.Access(ctx, userID, project)
	if err != nil {
		return domain.Project{}, err
	}
	if !access.CanRead() {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	if !access.CanWrite() {
		return domain.Project{}, domain.ErrForbidden
	}

	// The owner's editor membership is not up for renegotiation.
	if memberID != project.OwnerID {
		if _, err = s.userRepository.GetByID(ctx, memberID); err != nil {
			return domain.Project{}, err
		}
		if err = s.projectRepository.UpsertMember(ctx, projectID, memberID, role); err != nil {
			return domain.Project{}, err
		}
	}
	return s.projectRepository.GetByID(ctx, projectID)
}

func (s *ProjectService) RemoveMember(ctx context.Context, userID, projectID, memberID uuid.UUID) error {
	project, err := s.projectRepository.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	access, err := s.Access(ctx, userID, project)
	if err != nil {
		return err
	}
	if !access.CanRead() {
		return domain.ErrProjectNotFound
	}
	if !access.CanWrite() {
		return domain.ErrForbidden
	}
	if memberID == project.OwnerID {
		return domain.ErrOwnerNotRemovable
	}
	return s.projectRepository.RemoveMember(ctx, projectID, memberID)
}

// wouldCycle walks up from candidateParent; reaching projectID means
// the reassignment would close a loop in the hierarchy.
func (s *ProjectService) wouldCycle(ctx context.Context, projectID, candidateParent uuid.UUID) (bool, error) {
	current := &candidateParent
	for current != nil {
		if *current == projectID {
			return true, nil
		}
		next, err := s.projectRepository.ParentOf(ctx, *current)
		if err != nil {
			return false, err
		}
		current = next
	}
	return false, nil
}
