// file: repository/task_repository_test.go

package repository

import (
	"database/sql"
	"management-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "status", "due_date", "project_id",
		"created_at", "updated_at", "assignee_id", "assignee_name",
	})
}

func TestTaskRepository_UpdateTaskStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTaskRepository(db)

	t.Run("scoped to project", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE tasks SET status`).
			WithArgs("t1", "p1", "IN_PROGRESS").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1"))
		mock.ExpectQuery(`SELECT (.+) FROM tasks t`).
			WithArgs("t1").
			WillReturnRows(taskRows().
				AddRow("t1", "Wire telemetry", nil, "IN_PROGRESS", nil, "p1",
					time.Now(), time.Now(), "u1", "Dana"))

		task, err := repo.UpdateTaskStatus("t1", "p1", "IN_PROGRESS")

		assert.NoError(t, err)
		assert.Equal(t, "t1", task.ID)
		assert.NotNil(t, task.Assignee)
		assert.Equal(t, "Dana", task.Assignee.Name)
	})

	t.Run("wrong project yields no rows", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE tasks SET status`).
			WithArgs("t1", "other", "DONE").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.UpdateTaskStatus("t1", "other", "DONE")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateTask_PartialKeepsUnsetFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTaskRepository(db)
	title := "Renamed task"

	mock.ExpectQuery(`UPDATE tasks`).
		WithArgs("t1", &title, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("t1"))
	mock.ExpectQuery(`SELECT (.+) FROM tasks t`).
		WithArgs("t1").
		WillReturnRows(taskRows().
			AddRow("t1", "Renamed task", "existing description", "TODO", nil, "p1",
				time.Now(), time.Now(), nil, nil))

	task, err := repo.UpdateTask("t1", &model.UpdateTaskRequest{Title: &title}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Renamed task", task.Title)
	assert.Equal(t, "existing description", *task.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetTaskByID_NoAssignee(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewTaskRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM tasks t`).
		WithArgs("t2").
		WillReturnRows(taskRows().
			AddRow("t2", "Backlog item", nil, "TODO", nil, "p1",
				time.Now(), time.Now(), nil, nil))

	task, err := repo.GetTaskByID("t2")

	assert.NoError(t, err)
	assert.Nil(t, task.Assignee)
	assert.NoError(t, mock.ExpectationsWereMet())
}
