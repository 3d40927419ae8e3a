package repository

import (
	"context"
	"errors"

	"branchdesk-backend/internal/db"
	"branchdesk-backend/internal/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	DB *db.Postgres
}

func (r UserRepository) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, branch, role, created_at)
		VALUES ($1,$2,$3,$4,$5, now())
		RETURNING id, username, email, password_hash, branch, role, created_at
	`
	row := r.DB.Pool.QueryRow(ctx, query, u.Username, u.Email, u.PasswordHash, u.Branch, u.Role)
	return scanUser(row)
}

func (r UserRepository) GetByIdentity(ctx context.Context, username, branch string, role domain.UserRole) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, branch, role, created_at
		FROM users
		WHERE username=$1 AND branch=$2 AND role=$3
	`
	row := r.DB.Pool.QueryRow(ctx, query, username, branch, role)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Branch,
		&role,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// IsDuplicate detects unique constraint violation.
func IsDuplicate(err error) bool {
	return db.IsUniqueViolation(err)
}
