package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/todoapp/task-api/internal/core/domain"
)

const (
	queryUserByEmail = `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`
	queryUserByID    = `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`
	queryUserInsert  = `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at, updated_at`
	queryUserUpsert  = `INSERT INTO users (email, password_hash) VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = now()
RETURNING id, created_at, updated_at`
)

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the user with the given email, or (nil, nil) when no
// row matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(r.db.Pool.QueryRow(ctx, queryUserByEmail, email))
}

// FindByID returns the user with the given id, or (nil, nil) when no row
// matches.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanUser(r.db.Pool.QueryRow(ctx, queryUserByID, id))
}

// Create inserts a new user row. The database assigns id and timestamps.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	err := r.db.Pool.QueryRow(ctx, queryUserInsert, user.Email, user.PasswordHash).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

// Save upserts by email: it inserts the user or refreshes the stored password
// hash of an existing row.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	saved := *user
	err := r.db.Pool.QueryRow(ctx, queryUserUpsert, user.Email, user.PasswordHash).
		Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return &saved, nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
