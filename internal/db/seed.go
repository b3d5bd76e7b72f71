package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"croevo-console/internal/core/domain"
)

// SeedAdmin makes sure a principal with the given email exists and holds the
// admin role. An existing principal keeps its password. It reports whether
// a new role grant was written.
func SeedAdmin(ctx context.Context, db *pgxpool.Pool, email, passwordHash string) (bool, error) {
	email = domain.NormalizeEmail(email)

	var granted bool
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx, `INSERT INTO principals (email, password_hash)
VALUES ($1, $2) ON CONFLICT ((lower(email))) DO NOTHING RETURNING id`, email, passwordHash).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			err = tx.QueryRow(ctx, `SELECT id FROM principals WHERE lower(email) = $1`, email).Scan(&id)
		}
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `INSERT INTO user_roles (user_id, role)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, string(domain.RoleAdmin))
		if err != nil {
			return err
		}
		granted = tag.RowsAffected() == 1
		return nil
	})
	return granted, err
}
