package user

import "context"

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
)

// User is a login account. PasswordHash holds a bcrypt hash, never plaintext.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}

type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, bool, error)
}
