package model

import "time"

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProjectDetail decorates a project row with its task count and member ids.
type ProjectDetail struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	TaskCount   int       `json:"taskCount"`
	Members     []string  `json:"members"`
}

// ProjectMember is the joined user profile for a project's member list.
type ProjectMember struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar"`
}
