package identity

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo stores shadow identities in the identities table.
//
// Expected schema:
//
//	CREATE TABLE identities (
//	    id         BIGINT PRIMARY KEY,
//	    email      TEXT NOT NULL,
//	    name       TEXT NOT NULL,
//	    is_staff   BOOLEAN NOT NULL DEFAULT FALSE,
//	    is_active  BOOLEAN NOT NULL DEFAULT TRUE,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Upsert(ctx context.Context, rec Record) (Record, error) {
	const q = `
INSERT INTO identities (id, email, name, is_staff, is_active, updated_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (id) DO UPDATE
SET email = EXCLUDED.email,
    name = EXCLUDED.name,
    is_staff = EXCLUDED.is_staff,
    is_active = EXCLUDED.is_active,
    updated_at = now()
RETURNING id, email, name, is_staff, is_active, updated_at
`
	var out Record
	if err := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.Email,
		rec.Name,
		rec.IsStaff,
		rec.IsActive,
	).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.IsStaff,
		&out.IsActive,
		&out.UpdatedAt,
	); err != nil {
		return Record{}, err
	}
	return out, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id int64) (Record, error) {
	const q = `
SELECT id, email, name, is_staff, is_active, updated_at
FROM identities
WHERE id = $1
`
	var out Record
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&out.ID,
		&out.Email,
		&out.Name,
		&out.IsStaff,
		&out.IsActive,
		&out.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return out, nil
}
