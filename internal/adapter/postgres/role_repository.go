package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"croevo-console/internal/core/domain"
)

// RoleRepository implements port.RoleRepository.
type RoleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a new repository instance.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// HasRole reports whether the principal holds role.
func (r *RoleRepository) HasRole(ctx context.Context, principalID string, role domain.Role) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`,
		principalID, string(role)).Scan(&ok)
	return ok, err
}
