package service

import (
	"database/sql"
	"errors"
	"management-api/model"
	"management-api/repository"
	"time"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskNotInProject = errors.New("task not found or doesn't belong to specified project")
	ErrInvalidDueDate   = errors.New("invalid due date format")
	ErrAssigneeNotFound = errors.New("assignee not found")
)

// TaskService handles task CRUD business logic.
type TaskService struct {
	repo        repository.ITaskRepository
	projectRepo repository.IProjectRepository
	userRepo    repository.IUserRepository
}

func NewTaskService(repo repository.ITaskRepository, projectRepo repository.IProjectRepository, userRepo repository.IUserRepository) *TaskService {
	return &TaskService{repo: repo, projectRepo: projectRepo, userRepo: userRepo}
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		// Date-only form is accepted as well.
		t, err = time.Parse("2006-01-02", *raw)
		if err != nil {
			return nil, ErrInvalidDueDate
		}
	}
	return &t, nil
}

func (s *TaskService) ListTasks(projectID *string) ([]*model.Task, error) {
	return s.repo.GetAllTasks(projectID)
}

func (s *TaskService) GetTask(id string) (*model.TaskDetail, error) {
	task, err := s.repo.GetTaskByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) CreateTask(req *model.CreateTaskRequest) (*model.TaskDetail, error) {
	if _, err := s.projectRepo.GetProjectByID(req.ProjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if req.AssigneeID != nil {
		if _, err := s.userRepo.GetUserByID(*req.AssigneeID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrAssigneeNotFound
			}
			return nil, err
		}
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateTask(req, dueDate)
}

func (s *TaskService) UpdateTask(id string, req *model.UpdateTaskRequest) (*model.TaskDetail, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.UpdateTask(id, req, dueDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// UpdateStatus changes a task's status. The task must belong to the project
// named in the request.
func (s *TaskService) UpdateStatus(id string, req *model.UpdateTaskStatusRequest) (*model.TaskDetail, error) {
	task, err := s.repo.UpdateTaskStatus(id, req.ProjectID, req.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotInProject
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(id string) error {
	if _, err := s.repo.GetTaskByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}
	return s.repo.DeleteTask(id)
}
