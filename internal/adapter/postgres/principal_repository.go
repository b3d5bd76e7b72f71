package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"croevo-console/internal/core/domain"
	"croevo-console/internal/core/port"
)

// PrincipalRepository implements port.PrincipalRepository.
type PrincipalRepository struct {
	pool *pgxpool.Pool
}

// NewPrincipalRepository returns a new repository instance.
func NewPrincipalRepository(pool *pgxpool.Pool) *PrincipalRepository {
	return &PrincipalRepository{pool: pool}
}

// CreatePrincipal stores a new principal with a password hash.
func (r *PrincipalRepository) CreatePrincipal(ctx context.Context, email, passwordHash string) (*domain.Principal, error) {
	var p domain.Principal
	err := r.pool.QueryRow(ctx,
		`INSERT INTO principals (email, password_hash) VALUES ($1, $2) RETURNING id, email, password_hash, created_at`,
		email, passwordHash).Scan(&p.ID, &p.Email, &p.PasswordHash, &p.CreatedAt)
	if isUniqueViolation(err) {
		return nil, port.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPrincipalByEmail looks a principal up by normalized email.
func (r *PrincipalRepository) FindPrincipalByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	return r.get(ctx, `SELECT id, email, password_hash, created_at FROM principals WHERE lower(email) = lower($1)`, email)
}

// GetPrincipal returns a principal by id.
func (r *PrincipalRepository) GetPrincipal(ctx context.Context, id string) (*domain.Principal, error) {
	return r.get(ctx, `SELECT id, email, password_hash, created_at FROM principals WHERE id = $1`, id)
}

func (r *PrincipalRepository) get(ctx context.Context, query, arg string) (*domain.Principal, error) {
	var p domain.Principal
	err := r.pool.QueryRow(ctx, query, arg).Scan(&p.ID, &p.Email, &p.PasswordHash, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
