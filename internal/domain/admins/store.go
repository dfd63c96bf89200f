package admins

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store interface {
	GetByID(ctx context.Context, id int64) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
	UpdatePassword(ctx context.Context, admin *Admin) error
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) Store {
	return &Repository{db: q}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Admin, error) {
	a := &Admin{}
	err := r.db.QueryRow(ctx, `SELECT id, username, password FROM admins WHERE id = $1`, id).
		Scan(&a.ID, &a.Username, &a.Password.hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin by id: %w", err)
	}
	return a, nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	a := &Admin{}
	err := r.db.QueryRow(ctx, `SELECT id, username, password FROM admins WHERE username = $1`, username).
		Scan(&a.ID, &a.Username, &a.Password.hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin by username: %w", err)
	}
	return a, nil
}

// Create inserts the admin; Password must already be Set.
func (r *Repository) Create(ctx context.Context, admin *Admin) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admins (username, password) VALUES ($1, $2) RETURNING id`,
		admin.Username, admin.Password.hash).Scan(&admin.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, admin *Admin) error {
	cmd, err := r.db.Exec(ctx, `UPDATE admins SET password = $1 WHERE id = $2`, admin.Password.hash, admin.ID)
	if err != nil {
		return fmt.Errorf("update admin password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
