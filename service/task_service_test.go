// file: service/task_service_test.go

package service

import (
	"database/sql"
	"management-api/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTaskRepo struct{ mock.Mock }

func (m *mockTaskRepo) GetAllTasks(projectID *string) ([]*model.Task, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}
func (m *mockTaskRepo) GetTasksByProject(projectID string) ([]*model.Task, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}
func (m *mockTaskRepo) GetTaskByID(id string) (*model.TaskDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskDetail), args.Error(1)
}
func (m *mockTaskRepo) CreateTask(req *model.CreateTaskRequest, dueDate *time.Time) (*model.TaskDetail, error) {
	args := m.Called(req, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskDetail), args.Error(1)
}
func (m *mockTaskRepo) UpdateTask(id string, req *model.UpdateTaskRequest, dueDate *time.Time) (*model.TaskDetail, error) {
	args := m.Called(id, req, dueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskDetail), args.Error(1)
}
func (m *mockTaskRepo) UpdateTaskStatus(id, projectID, status string) (*model.TaskDetail, error) {
	args := m.Called(id, projectID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskDetail), args.Error(1)
}
func (m *mockTaskRepo) DeleteTask(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func testTaskDetail(status model.TaskStatus) *model.TaskDetail {
	return &model.TaskDetail{
		Task: model.Task{
			ID:        "task-1",
			Title:     "Implement login page",
			Status:    status,
			ProjectID: "proj-1",
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("unknown project", func(t *testing.T) {
		mockTasks := new(mockTaskRepo)
		mockProjects := new(mockProjectRepo)
		taskService := NewTaskService(mockTasks, mockProjects, nil)

		mockProjects.On("GetProjectByID", "missing").Return(nil, sql.ErrNoRows).Once()

		_, err := taskService.CreateTask(&model.CreateTaskRequest{
			Title: "T", Status: "TODO", ProjectID: "missing",
		})

		assert.ErrorIs(t, err, ErrProjectNotFound)
		mockTasks.AssertNotCalled(t, "CreateTask")
	})

	t.Run("unknown assignee", func(t *testing.T) {
		mockTasks := new(mockTaskRepo)
		mockProjects := new(mockProjectRepo)
		mockUsers := new(mockUserRepo)
		taskService := NewTaskService(mockTasks, mockProjects, mockUsers)

		project := testProject()
		assignee := "ghost"
		mockProjects.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockUsers.On("GetUserByID", "ghost").Return(nil, sql.ErrNoRows).Once()

		_, err := taskService.CreateTask(&model.CreateTaskRequest{
			Title: "T", Status: "TODO", ProjectID: project.ID, AssigneeID: &assignee,
		})

		assert.ErrorIs(t, err, ErrAssigneeNotFound)
	})

	t.Run("success with date-only due date", func(t *testing.T) {
		mockTasks := new(mockTaskRepo)
		mockProjects := new(mockProjectRepo)
		taskService := NewTaskService(mockTasks, mockProjects, nil)

		project := testProject()
		due := "2026-09-15"
		mockProjects.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockTasks.On("CreateTask", mock.Anything, mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && d.Format("2006-01-02") == "2026-09-15"
		})).Return(testTaskDetail(model.TaskStatusTodo), nil).Once()

		_, err := taskService.CreateTask(&model.CreateTaskRequest{
			Title: "T", Status: "TODO", ProjectID: project.ID, DueDate: &due,
		})

		assert.NoError(t, err)
		mockTasks.AssertExpectations(t)
	})

	t.Run("invalid due date", func(t *testing.T) {
		mockTasks := new(mockTaskRepo)
		mockProjects := new(mockProjectRepo)
		taskService := NewTaskService(mockTasks, mockProjects, nil)

		project := testProject()
		due := "next tuesday"
		mockProjects.On("GetProjectByID", project.ID).Return(project, nil).Once()

		_, err := taskService.CreateTask(&model.CreateTaskRequest{
			Title: "T", Status: "TODO", ProjectID: project.ID, DueDate: &due,
		})

		assert.ErrorIs(t, err, ErrInvalidDueDate)
		mockTasks.AssertNotCalled(t, "CreateTask")
	})
}

func TestTaskService_UpdateStatus(t *testing.T) {
	t.Run("task not in project", func(t *testing.T) {
		mockTasks := new(mockTaskRepo)
		taskService := NewTaskService(mockTasks, nil, nil)

		mockTasks.On("UpdateTaskStatus", "task-1", "other-project", "DONE").
			Return(nil, sql.ErrNoRows).Once()

		_, err := taskService.UpdateStatus("task-1", &model.UpdateTaskStatusRequest{
			Status: "DONE", ProjectID: "other-project",
		})

		assert.ErrorIs(t, err, ErrTaskNotInProject)
	})

	t.Run("success", func(t *testing.T) {
		mockTasks := new(mockTaskRepo)
		taskService := NewTaskService(mockTasks, nil, nil)

		mockTasks.On("UpdateTaskStatus", "task-1", "proj-1", "DONE").
			Return(testTaskDetail(model.TaskStatusDone), nil).Once()

		task, err := taskService.UpdateStatus("task-1", &model.UpdateTaskStatusRequest{
			Status: "DONE", ProjectID: "proj-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusDone, task.Status)
	})
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	mockTasks := new(mockTaskRepo)
	taskService := NewTaskService(mockTasks, nil, nil)

	mockTasks.On("GetTaskByID", "missing").Return(nil, sql.ErrNoRows).Once()

	err := taskService.DeleteTask("missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	mockTasks.AssertNotCalled(t, "DeleteTask")
}
