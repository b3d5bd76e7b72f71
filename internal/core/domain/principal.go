package domain

import "time"

// Role names a privilege held by a principal. Only RoleAdmin is granted by
// this service.
type Role string

const RoleAdmin Role = "admin"

// RoleGrant ties a principal to a role. The pair is unique.
type RoleGrant struct {
	PrincipalID string
	Role        Role
	CreatedAt   time.Time
}

// Principal is an authenticated identity issued by the identity adapter.
type Principal struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
