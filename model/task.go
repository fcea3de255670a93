package model

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// TaskAssignee is the joined assignee projection embedded in task responses.
type TaskAssignee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Status      TaskStatus    `json:"status"`
	Assignee    *TaskAssignee `json:"assignee"`
	DueDate     *time.Time    `json:"dueDate"`
	ProjectID   string        `json:"projectId"`
}

type TaskDetail struct {
	Task
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
