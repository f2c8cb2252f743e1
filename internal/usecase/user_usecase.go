package usecase

import (
	"context"

	"bmshub/internal/domain/entity"
)

// RegisterUserInput defines the data captured on first sign-in.
type RegisterUserInput struct {
	Name     string
	Email    string
	PhotoURL string
}

// RegisterUserOutput reports the stored user and whether a new document
// was created for this sign-in.
type RegisterUserOutput struct {
	User    *entity.User
	Created bool
}

// UserUsecase handles user accounts and the admin-only role overrides.
type UserUsecase interface {
	// Register stores a user on first sign-in; an existing email returns
	// the stored document untouched.
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// GetByEmail fetches a user by email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetRole resolves the role for an email. Unknown emails resolve to the
	// default user role without creating a document.
	GetRole(ctx context.Context, email string) (entity.Role, error)

	// ListMembers lists users currently holding the member role.
	ListMembers(ctx context.Context) ([]*entity.User, error)

	// UpdateRole is the administrative override that sets a role directly.
	UpdateRole(ctx context.Context, id string, role entity.Role) error

	// RemoveMember demotes a user back to the default role.
	RemoveMember(ctx context.Context, id string) error
}
