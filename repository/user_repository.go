package repository

import (
	"database/sql"
	"encoding/json"
	"management-api/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	GetAllUsers() ([]*model.User, error)
	UpdateUser(id string, name, role *string) (*model.User, error)
	UpdateUserSkills(id string, skills []string) (*model.User, error)
	UpdateUserAvatar(id, avatar string) (*model.User, error)
	GetUserStats(id string) (*model.UserStats, error)
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, name, email, password, role, avatar, skills, created_at`

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	var skills []byte
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Avatar, &skills, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(skills, &user.Skills); err != nil {
		user.Skills = []string{}
	}
	return user, nil
}

func (r *UserRepository) CreateUser(user *model.User) error {
	skills, err := json.Marshal(user.Skills)
	if err != nil {
		return err
	}
	query := `INSERT INTO users (name, email, password, role, skills)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.DB.QueryRow(query, user.Name, user.Email, user.Password, user.Role, skills).
		Scan(&user.ID, &user.CreatedAt)
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.DB.QueryRow(query, email))
}

func (r *UserRepository) GetUserByID(id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.DB.QueryRow(query, id))
}

func (r *UserRepository) GetAllUsers() ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*model.User{}
	for rows.Next() {
		user := &model.User{}
		var skills []byte
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.Avatar, &skills, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &user.Skills); err != nil {
			user.Skills = []string{}
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUser applies a partial update of name and role. Nil fields keep
// their current value via COALESCE.
func (r *UserRepository) UpdateUser(id string, name, role *string) (*model.User, error) {
	query := `UPDATE users
	          SET name = COALESCE($2, name), role = COALESCE($3, role)
	          WHERE id = $1
	          RETURNING ` + userColumns
	return scanUser(r.DB.QueryRow(query, id, name, role))
}

func (r *UserRepository) UpdateUserSkills(id string, skills []string) (*model.User, error) {
	data, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	query := `UPDATE users SET skills = $2 WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.DB.QueryRow(query, id, data))
}

func (r *UserRepository) UpdateUserAvatar(id, avatar string) (*model.User, error) {
	query := `UPDATE users SET avatar = $2 WHERE id = $1 RETURNING ` + userColumns
	return scanUser(r.DB.QueryRow(query, id, avatar))
}

// GetUserStats aggregates task and project counts for a user in one query.
func (r *UserRepository) GetUserStats(id string) (*model.UserStats, error) {
	stats := &model.UserStats{}
	query := `SELECT
	            (SELECT COUNT(*) FROM tasks WHERE assignee_id = $1),
	            (SELECT COUNT(*) FROM project_members WHERE user_id = $1),
	            (SELECT COUNT(*) FROM tasks WHERE assignee_id = $1 AND status = 'DONE')`
	err := r.DB.QueryRow(query, id).Scan(&stats.Tasks, &stats.Projects, &stats.Completed)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
