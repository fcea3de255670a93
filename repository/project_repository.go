// file: repository/project_repository.go

package repository

import (
	"database/sql"
	"management-api/logger"
	"management-api/model"

	"github.com/sirupsen/logrus"
)

// IProjectRepository defines the contract for project and membership
// database operations.
type IProjectRepository interface {
	GetAllProjects() ([]*model.Project, error)
	GetProjectByID(id string) (*model.Project, error)
	CreateProject(project *model.Project) error
	UpdateProject(id string, name, description *string) (*model.Project, error)
	DeleteProject(id string) error
	CountTasks(projectID string) (int, error)
	GetMemberIDs(projectID string) ([]string, error)
	GetMembers(projectID string) ([]*model.ProjectMember, error)
	IsMember(projectID, userID string) (bool, error)
	AddMember(projectID, userID string) error
	RemoveMember(projectID, userID string) error
}

// ProjectRepository implements IProjectRepository.
type ProjectRepository struct {
	DB *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) GetAllProjects() ([]*model.Project, error) {
	rows, err := r.DB.Query(`SELECT id, name, description, created_at FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		p := &model.Project{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetProjectByID(id string) (*model.Project, error) {
	p := &model.Project{}
	query := `SELECT id, name, description, created_at FROM projects WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err // sql.ErrNoRows when absent
	}
	return p, nil
}

func (r *ProjectRepository) CreateProject(project *model.Project) error {
	log := logger.Log.WithField("project_name", project.Name)
	log.Info("Executing query to create a new project")

	query := `INSERT INTO projects (name, description) VALUES ($1, $2) RETURNING id, created_at`
	err := r.DB.QueryRow(query, project.Name, project.Description).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create project query")
		return err
	}
	return nil
}

func (r *ProjectRepository) UpdateProject(id string, name, description *string) (*model.Project, error) {
	p := &model.Project{}
	query := `UPDATE projects
	          SET name = COALESCE($2, name), description = COALESCE($3, description)
	          WHERE id = $1
	          RETURNING id, name, description, created_at`
	err := r.DB.QueryRow(query, id, name, description).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) DeleteProject(id string) error {
	_, err := r.DB.Exec(`DELETE FROM projects WHERE id = $1`, id)
	return err
}

func (r *ProjectRepository) CountTasks(projectID string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM tasks WHERE project_id = $1`, projectID).Scan(&count)
	return count, err
}

func (r *ProjectRepository) GetMemberIDs(projectID string) ([]string, error) {
	rows, err := r.DB.Query(`SELECT user_id FROM project_members WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ProjectRepository) GetMembers(projectID string) ([]*model.ProjectMember, error) {
	query := `SELECT u.id, u.name, u.role, u.avatar
	          FROM project_members pm
	          JOIN users u ON u.id = pm.user_id
	          WHERE pm.project_id = $1`
	rows, err := r.DB.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*model.ProjectMember{}
	for rows.Next() {
		m := &model.ProjectMember{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Avatar); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *ProjectRepository) IsMember(projectID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2)`
	err := r.DB.QueryRow(query, projectID, userID).Scan(&exists)
	return exists, err
}

func (r *ProjectRepository) AddMember(projectID, userID string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"project_id": projectID,
		"user_id":    userID,
	})
	log.Info("Executing query to add a project member")

	_, err := r.DB.Exec(`INSERT INTO project_members (user_id, project_id) VALUES ($1, $2)`, userID, projectID)
	if err != nil {
		log.WithError(err).Error("Failed to execute add member query")
		return err
	}
	return nil
}

func (r *ProjectRepository) RemoveMember(projectID, userID string) error {
	_, err := r.DB.Exec(`DELETE FROM project_members WHERE project_id = $1 AND user_id = $2`, projectID, userID)
	return err
}
