package handler

import (
	"management-api/common"
	"management-api/model"
	"management-api/service"
	"net/http"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	service *service.TaskService
}

func NewTaskHandler(s *service.TaskService) *TaskHandler {
	return &TaskHandler{service: s}
}

func (h *TaskHandler) mapError(err error, fallback string) *common.AppError {
	switch err {
	case service.ErrTaskNotFound:
		return common.NotFound("Task not found", err)
	case service.ErrTaskNotInProject:
		return common.NotFound("Task not found or doesn't belong to specified project", err)
	case service.ErrProjectNotFound:
		return common.NotFound("Project not found", err)
	case service.ErrAssigneeNotFound:
		return common.NotFound("Assignee not found", err)
	case service.ErrInvalidDueDate:
		return common.InvalidArgument("Invalid due date format", err)
	default:
		return common.Internal(fallback, err)
	}
}

// ListTasks godoc
// @Summary      List tasks, optionally filtered by project
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        projectId query string false "Project id filter"
// @Success      200  {object}  handler.TaskListResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) *common.AppError {
	var projectID *string
	if v := r.URL.Query().Get("projectId"); v != "" {
		projectID = &v
	}

	tasks, err := h.service.ListTasks(projectID)
	if err != nil {
		return common.Internal("Could not retrieve tasks", err)
	}
	writeJSON(w, http.StatusOK, TaskListResponse{Tasks: tasks})
	return nil
}

// GetTask godoc
// @Summary      Task detail
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task id"
// @Success      200  {object}  model.TaskDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) *common.AppError {
	task, err := h.service.GetTask(r.PathValue("id"))
	if err != nil {
		return h.mapError(err, "Could not retrieve task")
	}
	writeJSON(w, http.StatusOK, task)
	return nil
}

// CreateTask godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        task body model.CreateTaskRequest true "Task payload"
// @Success      200  {object}  model.TaskDetail
// @Failure      404  {object}  common.AppError "Project or assignee not found"
// @Failure      500  {object}  common.AppError
// @Router       /api/tasks [post]
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateTaskRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	task, err := h.service.CreateTask(&req)
	if err != nil {
		return h.mapError(err, "Failed to create task")
	}
	writeJSON(w, http.StatusOK, task)
	return nil
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task id"
// @Param        task body model.UpdateTaskRequest true "Fields to update"
// @Success      200  {object}  model.TaskDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateTaskRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	task, err := h.service.UpdateTask(r.PathValue("id"), &req)
	if err != nil {
		return h.mapError(err, "Failed to update task")
	}
	writeJSON(w, http.StatusOK, task)
	return nil
}

// UpdateTaskStatus godoc
// @Summary      Change a task's status
// @Description  The task must belong to the project named in the payload.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task id"
// @Param        status body model.UpdateTaskStatusRequest true "Status payload"
// @Success      200  {object}  model.TaskDetail
// @Failure      404  {object}  common.AppError
// @Router       /api/tasks/{id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.UpdateTaskStatusRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	task, err := h.service.UpdateStatus(r.PathValue("id"), &req)
	if err != nil {
		return h.mapError(err, "Failed to update task status")
	}
	writeJSON(w, http.StatusOK, task)
	return nil
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task id"
// @Success      200  {object}  handler.SuccessResponse
// @Failure      404  {object}  common.AppError
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.DeleteTask(r.PathValue("id")); err != nil {
		return h.mapError(err, "Failed to delete task")
	}
	writeJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
	return nil
}
