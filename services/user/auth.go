package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stayhaven/config"
	"stayhaven/models"
	"stayhaven/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account with a bcrypt-hashed password and returns
// it with a signed token.
func (s *DefaultUserService) Register(in RegisterInput) (*AuthResponse, error) {
	if in.UserName == "" {
		return nil, InvalidInputError{Field: "userName", Reason: "name is required"}
	}
	if in.Email == "" {
		return nil, InvalidInputError{Field: "email", Reason: "email is required"}
	}
	if len(in.Password) < 6 {
		return nil, InvalidInputError{Field: "password", Reason: "password must be at least 6 characters long"}
	}

	role := in.Role
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleAdmin {
		return nil, InvalidInputError{Field: "role", Reason: "role must be either client or admin"}
	}

	existing, err := s.Repo.GetByIdentifier(in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: in.Email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		UserName:     strings.TrimSpace(in.UserName),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered", zap.String("userId", u.ID), zap.String("role", u.Role))
	return &AuthResponse{User: u, Token: token}, nil
}

// Authenticate verifies the password of the user matching the identifier.
func (s *DefaultUserService) Authenticate(identifier, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByIdentifier(identifier)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, AuthError{Reason: "email or username not found"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, AuthError{Reason: "incorrect password"}
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{User: u, Token: token}, nil
}

// Logout denylists the presented token until it would have expired anyway.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ExtractClaims(token)
	if err != nil {
		return AuthError{Reason: "invalid token"}
	}
	if err := utils.RevokeToken(ctx, utils.HashToken(token), claims.ExpiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// GetUserByID fetches one user.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, NotFoundError{ID: id}
	}
	return u, nil
}

func (s *DefaultUserService) issueToken(u *models.User) (string, error) {
	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 168 * time.Hour
	}
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
