// file: service/project_service_test.go

package service

import (
	"database/sql"
	"management-api/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) GetAllProjects() ([]*model.Project, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}
func (m *mockProjectRepo) GetProjectByID(id string) (*model.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}
func (m *mockProjectRepo) CreateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}
func (m *mockProjectRepo) UpdateProject(id string, name, description *string) (*model.Project, error) {
	args := m.Called(id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}
func (m *mockProjectRepo) DeleteProject(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *mockProjectRepo) CountTasks(projectID string) (int, error) {
	args := m.Called(projectID)
	return args.Int(0), args.Error(1)
}
func (m *mockProjectRepo) GetMemberIDs(projectID string) ([]string, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *mockProjectRepo) GetMembers(projectID string) ([]*model.ProjectMember, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProjectMember), args.Error(1)
}
func (m *mockProjectRepo) IsMember(projectID, userID string) (bool, error) {
	args := m.Called(projectID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *mockProjectRepo) AddMember(projectID, userID string) error {
	args := m.Called(projectID, userID)
	return args.Error(0)
}
func (m *mockProjectRepo) RemoveMember(projectID, userID string) error {
	args := m.Called(projectID, userID)
	return args.Error(0)
}

func testProject() *model.Project {
	return &model.Project{
		ID:        "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Name:      "Website Redesign",
		CreatedAt: time.Now(),
	}
}

func TestProjectService_GetProject(t *testing.T) {
	t.Run("success with counts", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		projectService := NewProjectService(mockRepo, nil, nil)

		project := testProject()
		mockRepo.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockRepo.On("CountTasks", project.ID).Return(7, nil).Once()
		mockRepo.On("GetMemberIDs", project.ID).Return([]string{"u1", "u2"}, nil).Once()

		detail, err := projectService.GetProject(project.ID)

		assert.NoError(t, err)
		assert.Equal(t, 7, detail.TaskCount)
		assert.Equal(t, []string{"u1", "u2"}, detail.Members)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		projectService := NewProjectService(mockRepo, nil, nil)

		mockRepo.On("GetProjectByID", "missing").Return(nil, sql.ErrNoRows).Once()

		_, err := projectService.GetProject("missing")
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestProjectService_AddMember(t *testing.T) {
	project := testProject()
	user := testUser()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		mockUsers := new(mockUserRepo)
		projectService := NewProjectService(mockRepo, mockUsers, nil)

		mockRepo.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockUsers.On("GetUserByID", user.ID).Return(user, nil).Once()
		mockRepo.On("IsMember", project.ID, user.ID).Return(false, nil).Once()
		mockRepo.On("AddMember", project.ID, user.ID).Return(nil).Once()

		added, err := projectService.AddMember(project.ID, user.ID)

		assert.NoError(t, err)
		assert.Equal(t, user.Name, added.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate member", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		mockUsers := new(mockUserRepo)
		projectService := NewProjectService(mockRepo, mockUsers, nil)

		mockRepo.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockUsers.On("GetUserByID", user.ID).Return(user, nil).Once()
		mockRepo.On("IsMember", project.ID, user.ID).Return(true, nil).Once()

		_, err := projectService.AddMember(project.ID, user.ID)

		assert.ErrorIs(t, err, ErrAlreadyMember)
		mockRepo.AssertNotCalled(t, "AddMember")
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		mockUsers := new(mockUserRepo)
		projectService := NewProjectService(mockRepo, mockUsers, nil)

		mockRepo.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockUsers.On("GetUserByID", "ghost").Return(nil, sql.ErrNoRows).Once()

		_, err := projectService.AddMember(project.ID, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestProjectService_RemoveMember(t *testing.T) {
	project := testProject()

	t.Run("not a member", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		projectService := NewProjectService(mockRepo, nil, nil)

		mockRepo.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockRepo.On("IsMember", project.ID, "u9").Return(false, nil).Once()

		err := projectService.RemoveMember(project.ID, "u9")

		assert.ErrorIs(t, err, ErrMemberNotFound)
		mockRepo.AssertNotCalled(t, "RemoveMember")
	})

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockProjectRepo)
		projectService := NewProjectService(mockRepo, nil, nil)

		mockRepo.On("GetProjectByID", project.ID).Return(project, nil).Once()
		mockRepo.On("IsMember", project.ID, "u1").Return(true, nil).Once()
		mockRepo.On("RemoveMember", project.ID, "u1").Return(nil).Once()

		err := projectService.RemoveMember(project.ID, "u1")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_DeleteProject_NotFound(t *testing.T) {
	mockRepo := new(mockProjectRepo)
	projectService := NewProjectService(mockRepo, nil, nil)

	mockRepo.On("GetProjectByID", "missing").Return(nil, sql.ErrNoRows).Once()

	err := projectService.DeleteProject("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	mockRepo.AssertNotCalled(t, "DeleteProject")
}
