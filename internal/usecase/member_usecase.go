package usecase

import (
	"context"

	"bmshub/internal/domain/entity"
)

// ApplyMemberInput defines the data required to file a membership
// application.
type ApplyMemberInput struct {
	Name  string
	Email string
}

// MemberUsecase handles the membership-approval track, which runs parallel
// to the agreement lifecycle and also promotes User.Role on activation.
type MemberUsecase interface {
	// Apply files a new application; status is always forced to pending.
	Apply(ctx context.Context, input *ApplyMemberInput) (string, error)

	// List returns every application regardless of status.
	List(ctx context.Context) ([]*entity.Member, error)

	// ListPending returns applications awaiting review.
	ListPending(ctx context.Context) ([]*entity.Member, error)

	// UpdateStatus moves an application to the given status. Activation
	// additionally sets the member's stored email to the member role.
	UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) error
}
