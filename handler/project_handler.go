package handler

import (
	"management-api/common"
	"management-api/model"
	"management-api/service"
	"net/http"
)

// ProjectHandler holds dependencies for project-related handlers.
type ProjectHandler struct {
	service *service.ProjectService
}

func NewProjectHandler(s *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: s}
}

// ProjectListResponse wraps the project list.
type ProjectListResponse struct {
	Projects []*model.ProjectDetail `json:"projects"`
}

// TaskListResponse wraps a task list.
type TaskListResponse struct {
	Tasks []*model.Task `json:"tasks"`
}

// MemberListResponse wraps a project member list.
type MemberListResponse struct {
	Members []*model.ProjectMember `json:"members"`
}

// MemberResponse acknowledges a membership change.
type MemberResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	User    *model.TaskAssignee `json:"user,omitempty"`
}

func (h *ProjectHandler) mapError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrProjectNotFound:
		return common.NotFound("Project not found", err)
	case service.ErrUserNotFound:
		return common.NotFound("User not found", err)
	case service.ErrMemberNotFound:
		return common.NotFound("Project member not found", err)
	case service.ErrAlreadyMember:
		return common.InvalidArgument("User is already a member of this project", err)
	default:
		return common.Internal(fallback, err)
	}
}

// ListProjects godoc
// @Summary      List all projects with task counts and member ids
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  handler.ProjectListResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) *common.AppError {
	projects, err := h.service.ListProjects()
	if err != nil {
		return common.Internal("Could not retrieve projects", err)
	}
	writeJSON(w, http.StatusOK, ProjectListResponse{Projects: projects})
	return nil
}

// GetProject godoc
// @Summary      Project detail
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project id"
// @Success      200  {object}  model.ProjectDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) *common.AppError {
	project, err := h.service.GetProject(r.PathValue("id"))
	if err != nil {
		return h.mapError(err, "Could not retrieve project")
	}
	writeJSON(w, http.StatusOK, project)
	return nil
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project body model.CreateProjectRequest true "Project payload"
// @Success      200  {object}  model.ProjectDetail
// @Router       /api/projects [post]
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateProjectRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	project, err := h.service.CreateProject(&req)
	if err != nil {
		return common.Internal("Failed to create project", err)
	}
	writeJSON(w, http.StatusOK, project)
	return nil
}

// UpdateProject godoc
// @Summary      Update a project's name and description
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project id"
// @Param        project body model.UpdateProjectRequest true "Fields to update"
// @Success      200  {object}  model.ProjectDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateProjectRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	project, err := h.service.UpdateProject(r.PathValue("id"), &req)
	if err != nil {
		return h.mapError(err, "Failed to update project")
	}
	writeJSON(w, http.StatusOK, project)
	return nil
}

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project id"
// @Success      200  {object}  handler.SuccessResponse
// @Failure      404  {object}  common.AppError
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.DeleteProject(r.PathValue("id")); err != nil {
		return h.mapError(err, "Failed to delete project")
	}
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Project deleted successfully",
	})
	return nil
}

// ListProjectTasks godoc
// @Summary      Tasks belonging to a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project id"
// @Success      200  {object}  handler.TaskListResponse
// @Failure      404  {object}  common.AppError
// @Router       /api/projects/{id}/tasks [get]
func (h *ProjectHandler) ListProjectTasks(w http.ResponseWriter, r *http.Request) *common.AppError {
	tasks, err := h.service.ListProjectTasks(r.PathValue("id"))
	if err != nil {
		return h.mapError(err, "Could not retrieve project tasks")
	}
	writeJSON(w, http.StatusOK, TaskListResponse{Tasks: tasks})
	return nil
}

// ListProjectMembers godoc
// @Summary      Member profiles of a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project id"
// @Success      200  {object}  handler.MemberListResponse
// @Failure      404  {object}  common.AppError
// @Router       /api/projects/{id}/members [get]
func (h *ProjectHandler) ListProjectMembers(w http.ResponseWriter, r *http.Request) *common.AppError {
	members, err := h.service.ListProjectMembers(r.PathValue("id"))
	if err != nil {
		return h.mapError(err, "Could not retrieve project members")
	}
	writeJSON(w, http.StatusOK, MemberListResponse{Members: members})
	return nil
}

// AddMember godoc
// @Summary      Add a user to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project id"
// @Param        member body model.AddMemberRequest true "Member payload"
// @Success      200  {object}  handler.MemberResponse
// @Failure      400  {object}  common.AppError "Already a member"
// @Failure      404  {object}  common.AppError
// @Router       /api/projects/{id}/members [post]
func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.AddMemberRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, err := h.service.AddMember(r.PathValue("id"), req.UserID)
	if err != nil {
		return h.mapError(err, "Failed to add project member")
	}

	writeJSON(w, http.StatusOK, MemberResponse{
		Success: true,
		Message: "User added to project",
		User:    &model.TaskAssignee{ID: user.ID, Name: user.Name},
	})
	return nil
}

// RemoveMember godoc
// @Summary      Remove a user from a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Project id"
// @Param        userId path string true "User id"
// @Success      200  {object}  handler.MemberResponse
// @Failure      404  {object}  common.AppError
// @Router       /api/projects/{id}/members/{userId} [delete]
func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.RemoveMember(r.PathValue("id"), r.PathValue("userId")); err != nil {
		return h.mapError(err, "Failed to remove project member")
	}
	writeJSON(w, http.StatusOK, MemberResponse{
		Success: true,
		Message: "User removed from project",
	})
	return nil
}
