package repository

import (
	"context"

	"bmshub/internal/domain/entity"
)

// MemberRepository defines persistence operations for membership
// applications.
type MemberRepository interface {
	// Insert persists a new member application and returns the generated id.
	Insert(ctx context.Context, member *entity.Member) (string, error)

	// FindByID retrieves one member. Returns ErrInvalidID for malformed ids
	// and ErrMemberNotFound on a lookup miss.
	FindByID(ctx context.Context, id string) (*entity.Member, error)

	// FindAll lists every member application.
	FindAll(ctx context.Context) ([]*entity.Member, error)

	// FindByStatus lists member applications in the given state.
	FindByStatus(ctx context.Context, status entity.MemberStatus) ([]*entity.Member, error)

	// UpdateStatus sets the status of one member and returns the modified
	// count. Returns ErrInvalidID for malformed ids.
	UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) (int64, error)
}
