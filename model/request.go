// file: model/request.go

package model

// Request payloads carry validation tags so malformed input is rejected at
// the entry point, before any service logic runs.

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type CreateUserRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Role     string   `json:"role" validate:"required"`
	Skills   []string `json:"skills"`
}

type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills" validate:"required"`
}

type UpdateAvatarRequest struct {
	AvatarBase64 string `json:"avatarBase64" validate:"required"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	ProjectID   string  `json:"projectId" validate:"required"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	AssigneeID  *string `json:"assigneeId,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status    string `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
	ProjectID string `json:"projectId" validate:"required"`
}

type ShortenRequest struct {
	URL string `json:"url" validate:"required,url"`
}
