package model

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleDeveloper Role = "developer"
)

// User is the full database row, including the password hash. It never
// leaves the service layer as-is; responses carry SafeUser or UserDetail.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

// SafeUser is the projection returned by the auth endpoints. It carries no
// credential material.
type SafeUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewSafeUser strips a user row down to its non-sensitive fields.
func NewSafeUser(u *User) SafeUser {
	return SafeUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// UserBasic is the list-view projection.
type UserBasic struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Avatar *string  `json:"avatar"`
	Skills []string `json:"skills"`
}

// UserStats aggregates a user's workload: assigned tasks, project
// memberships and completed tasks.
type UserStats struct {
	Tasks     int `json:"tasks"`
	Projects  int `json:"projects"`
	Completed int `json:"completed"`
}

// UserDetail is the detail-view projection with aggregated stats.
type UserDetail struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Avatar *string   `json:"avatar"`
	Skills []string  `json:"skills"`
	Stats  UserStats `json:"stats"`
}
