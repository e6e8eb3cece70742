package user

import (
	"context"

	"github.com/google/uuid"
)

// User is the admin credential. The console has exactly one of these in
// practice, seeded by scripts/seed_owner.go.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
