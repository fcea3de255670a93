package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"management-api/logger"
	"management-api/model"
	"management-api/repository"
	"strings"
	"time"
)

var ErrInvalidAvatar = errors.New("invalid image format")

const usersCacheKey = "users:all"
const usersCacheTTL = 10 * time.Minute

// UserService handles user-related business logic: list/detail projections,
// workload stats aggregation, profile updates and the Redis user cache.
type UserService struct {
	repo  repository.IUserRepository
	auth  *AuthService
	cache ICacheClient
}

func NewUserService(repo repository.IUserRepository, auth *AuthService, cache ICacheClient) *UserService {
	return &UserService{repo: repo, auth: auth, cache: cache}
}

func toUserBasic(u *model.User) *model.UserBasic {
	return &model.UserBasic{
		ID:     u.ID,
		Name:   u.Name,
		Role:   u.Role,
		Avatar: u.Avatar,
		Skills: u.Skills,
	}
}

func (s *UserService) toUserDetail(u *model.User) (*model.UserDetail, error) {
	stats, err := s.repo.GetUserStats(u.ID)
	if err != nil {
		return nil, err
	}
	return &model.UserDetail{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
		Skills: u.Skills,
		Stats:  *stats,
	}, nil
}

// ListUsers returns the list projection, utilizing a cache-aside strategy.
func (s *UserService) ListUsers() ([]*model.UserBasic, error) {
	ctx := context.Background()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, usersCacheKey).Result(); err == nil {
			var users []*model.UserBasic
			if err := json.Unmarshal([]byte(cached), &users); err == nil {
				return users, nil
			}
		}
	}

	rows, err := s.repo.GetAllUsers()
	if err != nil {
		return nil, err
	}

	users := make([]*model.UserBasic, 0, len(rows))
	for _, u := range rows {
		users = append(users, toUserBasic(u))
	}

	if s.cache != nil {
		if data, err := json.Marshal(users); err == nil {
			s.cache.Set(ctx, usersCacheKey, data, usersCacheTTL)
		}
	}

	return users, nil
}

func (s *UserService) invalidateCache() {
	if s.cache != nil {
		s.cache.Del(context.Background(), usersCacheKey)
	}
}

func (s *UserService) GetUserDetail(id string) (*model.UserDetail, error) {
	user, err := s.repo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.toUserDetail(user)
}

// CreateUser registers a user through the admin surface. The password is
// hashed with the same credential policy the auth endpoints use.
func (s *UserService) CreateUser(req *model.CreateUserRequest) (*model.UserDetail, error) {
	_, err := s.repo.GetUserByEmail(req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hashedPassword, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
		Skills:   skills,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.invalidateCache()

	return &model.UserDetail{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
		Skills: user.Skills,
		Stats:  model.UserStats{},
	}, nil
}

func (s *UserService) UpdateUser(id string, req *model.UpdateUserRequest) (*model.UserDetail, error) {
	if req.Name == nil && req.Role == nil {
		return s.GetUserDetail(id)
	}

	user, err := s.repo.UpdateUser(id, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.invalidateCache()
	return s.toUserDetail(user)
}

func (s *UserService) UpdateSkills(id string, skills []string) (*model.User, error) {
	user, err := s.repo.UpdateUserSkills(id, skills)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.invalidateCache()
	return user, nil
}

// UpdateAvatar stores a base64 data-URI avatar. Only data:image/ payloads
// are accepted.
func (s *UserService) UpdateAvatar(id, avatarBase64 string) (*model.User, error) {
	if !strings.HasPrefix(avatarBase64, "data:image/") {
		return nil, ErrInvalidAvatar
	}

	user, err := s.repo.UpdateUserAvatar(id, avatarBase64)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.invalidateCache()
	return user, nil
}

func (s *UserService) GetStats(id string) (*model.UserStats, error) {
	if _, err := s.repo.GetUserByID(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.repo.GetUserStats(id)
}

// SyncUsersToCache rewrites the user list cache from the database and
// returns the number of users written.
func (s *UserService) SyncUsersToCache() (int, error) {
	rows, err := s.repo.GetAllUsers()
	if err != nil {
		return 0, err
	}

	users := make([]*model.UserBasic, 0, len(rows))
	for _, u := range rows {
		users = append(users, toUserBasic(u))
	}

	data, err := json.Marshal(users)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(context.Background(), usersCacheKey, data, usersCacheTTL).Err(); err != nil {
			logger.Log.WithError(err).Error("Failed to write user list to cache")
			return 0, err
		}
	}

	logger.Log.WithField("count", len(users)).Info("User cache synchronized")
	return len(users), nil
}
