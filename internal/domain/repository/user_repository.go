package repository

import (
	"context"

	"bmshub/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by email address.
	// Returns ErrUserNotFound when no document matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByRole lists users holding the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new user and returns the generated id.
	Create(ctx context.Context, user *entity.User) (string, error)

	// UpdateRoleByEmail sets the role for the user with the given email and
	// returns the modified count. A zero count means the user does not
	// exist; callers decide whether that is an error.
	UpdateRoleByEmail(ctx context.Context, email string, role entity.Role) (int64, error)

	// UpdateRoleByID sets the role for the user with the given id and
	// returns the modified count. Returns ErrInvalidID for malformed ids.
	UpdateRoleByID(ctx context.Context, id string, role entity.Role) (int64, error)
}
