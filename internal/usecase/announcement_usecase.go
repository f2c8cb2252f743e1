package usecase

import (
	"context"

	"bmshub/internal/domain/entity"
)

// CreateAnnouncementInput defines the data required to post a notice.
type CreateAnnouncementInput struct {
	Title       string
	Description string
}

// AnnouncementUsecase handles the announcement reference data.
type AnnouncementUsecase interface {
	Create(ctx context.Context, input *CreateAnnouncementInput) (string, error)
	List(ctx context.Context) ([]*entity.Announcement, error)
}
