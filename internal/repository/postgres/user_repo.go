package postgres

import (
	"context"
	"errors"

	"recruiterconnect-backend/internal/domain"
	"recruiterconnect-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, name, user_type, image_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var userType *string
	if user.UserType != nil {
		t := string(*user.UserType)
		userType = &t
	}
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, userType, user.ImageURL,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, name, user_type, image_url, created_at, updated_at
	          FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, name, user_type, image_url, created_at, updated_at
	          FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var userType *string
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &userType,
		&user.ImageURL, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	if userType != nil {
		t := domain.UserType(*userType)
		user.UserType = &t
	}
	return &user, nil
}

func (r *userRepo) UpdateType(ctx context.Context, userID string, userType domain.UserType) error {
	query := `UPDATE users SET user_type = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, userID, string(userType))
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// Delete removes the user row. Profile rows cascade at the schema level,
// so the compensating cleanup after a failed registration is one call.
func (r *userRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
