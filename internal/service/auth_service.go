package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"branchdesk-backend/internal/auth"
	"branchdesk-backend/internal/domain"
	"branchdesk-backend/internal/ports"
	"branchdesk-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found or incorrect branch/role")
	ErrAlreadyExists      = errors.New("username or email already exists")
	ErrInvalidRole        = errors.New("invalid role, must be Admin or User")
)

type AuthService struct {
	Users  ports.UserStore
	Hasher auth.PasswordHasher
	Tokens auth.TokenIssuer
	Logger *slog.Logger
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Branch   string
	Role     domain.UserRole
}

type LoginInput struct {
	Username string
	Password string
	Branch   string
	Role     domain.UserRole
}

func (s AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.Users.Create(ctx, domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Branch:       in.Branch,
		Role:         in.Role,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials for the exact (username, branch, role) identity
// and returns a signed access token. A missing identity and a bad password are
// reported as distinct errors.
func (s AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.Users.GetByIdentity(ctx, in.Username, in.Branch, in.Role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}
	if !s.Hasher.Verify(in.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		Branch:   user.Branch,
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
