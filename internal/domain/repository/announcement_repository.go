package repository

import (
	"context"

	"bmshub/internal/domain/entity"
)

// AnnouncementRepository defines persistence operations for announcements.
type AnnouncementRepository interface {
	// Insert persists a new announcement and returns the generated id.
	Insert(ctx context.Context, announcement *entity.Announcement) (string, error)

	// FindAll lists every announcement.
	FindAll(ctx context.Context) ([]*entity.Announcement, error)
}
