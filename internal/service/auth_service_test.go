package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"branchdesk-backend/internal/auth"
	"branchdesk-backend/internal/domain"
	"branchdesk-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserStore enforces the same uniqueness the users table does.
type fakeUserStore struct {
	users  []domain.User
	nextID int64
}

func (f *fakeUserStore) Create(_ context.Context, u domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeUserStore) GetByIdentity(_ context.Context, username, branch string, role domain.UserRole) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username && u.Branch == branch && u.Role == role {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestService() (AuthService, *fakeUserStore) {
	store := &fakeUserStore{}
	svc := AuthService{
		Users:  store,
		Hasher: auth.BcryptHasher{Cost: bcrypt.MinCost},
		Tokens: auth.JWTIssuer{Secret: "test-secret"},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return svc, store
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, store := newTestService()

	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "hunter2",
		Branch: "Downtown", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "hunter2" || user.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}
	if len(store.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(store.users))
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "hunter2",
		Branch: "Downtown", Role: domain.UserRole("Superadmin"),
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
	if len(store.users) != 0 {
		t.Error("no user should be written for an invalid role")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Username: "alice", Email: "shared@example.com", Password: "pw",
		Branch: "Downtown", Role: domain.RoleUser,
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{
		Username: "bob", Email: "shared@example.com", Password: "pw",
		Branch: "Uptown", Role: domain.RoleUser,
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
	if len(store.users) != 1 {
		t.Errorf("first registration should be unaffected, got %d users", len(store.users))
	}
}

func TestLoginFlows(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "hunter2",
		Branch: "Downtown", Role: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown triple: right username, wrong branch.
	_, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "hunter2", Branch: "Uptown", Role: domain.RoleAdmin})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for wrong branch, got %v", err)
	}

	// Wrong password is distinct from not-found.
	_, err = svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong", Branch: "Downtown", Role: domain.RoleAdmin})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	token, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "hunter2", Branch: "Downtown", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := auth.JWTIssuer{Secret: "test-secret"}.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "alice" || claims.Role != "Admin" || claims.Branch != "Downtown" {
		t.Errorf("claims do not match registered identity: %+v", claims)
	}
}
