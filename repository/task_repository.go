// file: repository/task_repository.go

package repository

import (
	"database/sql"
	"management-api/model"
	"time"
)

// ITaskRepository defines the contract for task database operations.
type ITaskRepository interface {
	GetAllTasks(projectID *string) ([]*model.Task, error)
	GetTasksByProject(projectID string) ([]*model.Task, error)
	GetTaskByID(id string) (*model.TaskDetail, error)
	CreateTask(req *model.CreateTaskRequest, dueDate *time.Time) (*model.TaskDetail, error)
	UpdateTask(id string, req *model.UpdateTaskRequest, dueDate *time.Time) (*model.TaskDetail, error)
	UpdateTaskStatus(id, projectID, status string) (*model.TaskDetail, error)
	DeleteTask(id string) error
}

// TaskRepository implements ITaskRepository.
type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

const taskSelect = `SELECT t.id, t.title, t.description, t.status, t.due_date, t.project_id,
	       t.created_at, t.updated_at, u.id, u.name
	FROM tasks t
	LEFT JOIN users u ON t.assignee_id = u.id`

func scanTaskRow(scan func(dest ...interface{}) error) (*model.TaskDetail, error) {
	t := &model.TaskDetail{}
	var assigneeID, assigneeName sql.NullString
	err := scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.ProjectID,
		&t.CreatedAt, &t.UpdatedAt, &assigneeID, &assigneeName)
	if err != nil {
		return nil, err
	}
	if assigneeID.Valid {
		t.Assignee = &model.TaskAssignee{ID: assigneeID.String, Name: assigneeName.String}
	}
	return t, nil
}

func (r *TaskRepository) queryTasks(query string, args ...interface{}) ([]*model.Task, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*model.Task{}
	for rows.Next() {
		t, err := scanTaskRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, &t.Task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetAllTasks(projectID *string) ([]*model.Task, error) {
	if projectID != nil {
		return r.queryTasks(taskSelect+` WHERE t.project_id = $1 ORDER BY t.created_at`, *projectID)
	}
	return r.queryTasks(taskSelect + ` ORDER BY t.created_at`)
}

func (r *TaskRepository) GetTasksByProject(projectID string) ([]*model.Task, error) {
	return r.queryTasks(taskSelect+` WHERE t.project_id = $1 ORDER BY t.created_at`, projectID)
}

func (r *TaskRepository) GetTaskByID(id string) (*model.TaskDetail, error) {
	return scanTaskRow(r.DB.QueryRow(taskSelect+` WHERE t.id = $1`, id).Scan)
}

func (r *TaskRepository) CreateTask(req *model.CreateTaskRequest, dueDate *time.Time) (*model.TaskDetail, error) {
	var id string
	query := `INSERT INTO tasks (title, description, status, assignee_id, due_date, project_id)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var description *string
	if req.Description != "" {
		description = &req.Description
	}
	err := r.DB.QueryRow(query, req.Title, description, req.Status, req.AssigneeID, dueDate, req.ProjectID).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetTaskByID(id)
}

// UpdateTask applies a partial update. Nil fields keep their current value;
// updated_at is always bumped. JSON null and an absent field both decode to
// a nil pointer, so a column cannot be cleared back to NULL through this
// path.
func (r *TaskRepository) UpdateTask(id string, req *model.UpdateTaskRequest, dueDate *time.Time) (*model.TaskDetail, error) {
	query := `UPDATE tasks
	          SET title       = COALESCE($2, title),
	              description = COALESCE($3, description),
	              status      = COALESCE($4, status),
	              assignee_id = COALESCE($5, assignee_id),
	              due_date    = COALESCE($6, due_date),
	              project_id  = COALESCE($7, project_id),
	              updated_at  = NOW()
	          WHERE id = $1
	          RETURNING id`
	var updatedID string
	err := r.DB.QueryRow(query, id, req.Title, req.Description, req.Status, req.AssigneeID, dueDate, req.ProjectID).Scan(&updatedID)
	if err != nil {
		return nil, err
	}
	return r.GetTaskByID(updatedID)
}

// UpdateTaskStatus changes the status of a task that belongs to the given
// project. sql.ErrNoRows means the task is absent or in another project.
func (r *TaskRepository) UpdateTaskStatus(id, projectID, status string) (*model.TaskDetail, error) {
	query := `UPDATE tasks SET status = $3, updated_at = NOW()
	          WHERE id = $1 AND project_id = $2
	          RETURNING id`
	var updatedID string
	err := r.DB.QueryRow(query, id, projectID, status).Scan(&updatedID)
	if err != nil {
		return nil, err
	}
	return r.GetTaskByID(updatedID)
}

func (r *TaskRepository) DeleteTask(id string) error {
	_, err := r.DB.Exec(`DELETE FROM tasks WHERE id = $1`, id)
	return err
}
