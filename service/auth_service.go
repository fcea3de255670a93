package service

import (
	"database/sql"
	"errors"
	"fmt"
	"management-api/config"
	"management-api/logger"
	"management-api/model"
	"management-api/repository"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongTokenType     = errors.New("wrong token type")
)

// AuthService owns the credential and token lifecycle: bcrypt hashing,
// issuing and verifying the signed access/refresh pair, and the session
// flows built on top of them. Verification is stateless: any process holding
// the shared secret can verify a token without a store round trip, which is
// why there is no server-side revocation and logout is a pure acknowledgment.
type AuthService struct {
	userRepo repository.IUserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.IUserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// AuthResponse is the session payload returned by signup, login and refresh.
type AuthResponse struct {
	User         model.SafeUser `json:"user"`
	Token        string         `json:"token"`
	RefreshToken string         `json:"refreshToken"`
	ExpiresAt    time.Time      `json:"expiresAt"`
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Auth.BcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *AuthService) signToken(user *model.User, tokenType model.TokenType, ttl time.Duration) (string, error) {
	claims := &model.AppClaims{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// IssueAccessToken mints a short-lived token authorizing individual requests.
func (s *AuthService) IssueAccessToken(user *model.User) (string, error) {
	return s.signToken(user, model.TokenTypeAccess, s.cfg.JWT.AccessTokenTTL)
}

// IssueRefreshToken mints a longer-lived token used only to obtain a new pair.
func (s *AuthService) IssueRefreshToken(user *model.User) (string, error) {
	return s.signToken(user, model.TokenTypeRefresh, s.cfg.JWT.RefreshTokenTTL)
}

// VerifyToken checks the signature, the expiry claim and the token kind.
// A refresh token presented where an access token is expected fails with
// ErrWrongTokenType, and vice versa.
func (s *AuthService) VerifyToken(tokenString string, expected model.TokenType) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != expected {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

func (s *AuthService) buildAuthResponse(user *model.User) (*AuthResponse, error) {
	accessToken, err := s.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	// ExpiresAt mirrors the expiry claim inside the access token: both come
	// from the same configured TTL, so the client never sees a drifted value.
	return &AuthResponse{
		User:         model.NewSafeUser(user),
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.cfg.JWT.AccessTokenTTL),
	}, nil
}

// Signup registers a new user and opens a session for it.
func (s *AuthService) Signup(req *model.SignupRequest) (*AuthResponse, error) {
	_, err := s.userRepo.GetUserByEmail(req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hashedPassword, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
		Skills:   []string{},
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("New user registered")
	return s.buildAuthResponse(user)
}

// Login verifies credentials and opens a session. The distinction between an
// unknown email and a wrong password is kept in the error kind, but both
// carry the same generic message to avoid account enumeration.
func (s *AuthService) Login(req *model.LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !s.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The user row is
// reloaded so the new tokens carry the current email and role: a role change
// takes effect on the next refresh, not on outstanding access tokens.
func (s *AuthService) Refresh(refreshToken string) (*AuthResponse, error) {
	claims, err := s.VerifyToken(refreshToken, model.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.buildAuthResponse(user)
}
