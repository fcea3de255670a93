package service

import (
	"database/sql"
	"errors"
	"management-api/logger"
	"management-api/model"
	"management-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrAlreadyMember   = errors.New("user is already a member of this project")
	ErrMemberNotFound  = errors.New("project member not found")
)

// ProjectService handles project CRUD and membership business logic.
type ProjectService struct {
	repo     repository.IProjectRepository
	userRepo repository.IUserRepository
	taskRepo repository.ITaskRepository
}

func NewProjectService(repo repository.IProjectRepository, userRepo repository.IUserRepository, taskRepo repository.ITaskRepository) *ProjectService {
	return &ProjectService{repo: repo, userRepo: userRepo, taskRepo: taskRepo}
}

func (s *ProjectService) toDetail(p *model.Project) (*model.ProjectDetail, error) {
	taskCount, err := s.repo.CountTasks(p.ID)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.GetMemberIDs(p.ID)
	if err != nil {
		return nil, err
	}
	return &model.ProjectDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		TaskCount:   taskCount,
		Members:     members,
	}, nil
}

func (s *ProjectService) ListProjects() ([]*model.ProjectDetail, error) {
	projects, err := s.repo.GetAllProjects()
	if err != nil {
		return nil, err
	}

	details := make([]*model.ProjectDetail, 0, len(projects))
	for _, p := range projects {
		d, err := s.toDetail(p)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *ProjectService) GetProject(id string) (*model.ProjectDetail, error) {
	project, err := s.repo.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.toDetail(project)
}

func (s *ProjectService) CreateProject(req *model.CreateProjectRequest) (*model.ProjectDetail, error) {
	project := &model.Project{Name: req.Name}
	if req.Description != "" {
		project.Description = &req.Description
	}
	if err := s.repo.CreateProject(project); err != nil {
		return nil, err
	}
	return &model.ProjectDetail{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedAt:   project.CreatedAt,
		TaskCount:   0,
		Members:     []string{},
	}, nil
}

func (s *ProjectService) UpdateProject(id string, req *model.UpdateProjectRequest) (*model.ProjectDetail, error) {
	if req.Name == nil && req.Description == nil {
		return s.GetProject(id)
	}

	project, err := s.repo.UpdateProject(id, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.toDetail(project)
}

func (s *ProjectService) DeleteProject(id string) error {
	if _, err := s.repo.GetProjectByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProjectNotFound
		}
		return err
	}
	return s.repo.DeleteProject(id)
}

func (s *ProjectService) ListProjectTasks(id string) ([]*model.Task, error) {
	if _, err := s.repo.GetProjectByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.taskRepo.GetTasksByProject(id)
}

func (s *ProjectService) ListProjectMembers(id string) ([]*model.ProjectMember, error) {
	if _, err := s.repo.GetProjectByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.repo.GetMembers(id)
}

// AddMember adds a user to a project. Both sides must exist and the
// membership must not already be present.
func (s *ProjectService) AddMember(projectID, userID string) (*model.User, error) {
	if _, err := s.repo.GetProjectByID(projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isMember, err := s.repo.IsMember(projectID, userID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, ErrAlreadyMember
	}

	if err := s.repo.AddMember(projectID, userID); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"project_id": projectID,
		"user_id":    userID,
	}).Info("User added to project")

	return user, nil
}

func (s *ProjectService) RemoveMember(projectID, userID string) error {
	if _, err := s.repo.GetProjectByID(projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProjectNotFound
		}
		return err
	}

	isMember, err := s.repo.IsMember(projectID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrMemberNotFound
	}

	return s.repo.RemoveMember(projectID, userID)
}
