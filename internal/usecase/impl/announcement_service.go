package impl

import (
	"context"
	"time"

	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	"bmshub/internal/usecase"
)

// announcementService implements the AnnouncementUsecase interface.
type announcementService struct {
	announcementRepo repository.AnnouncementRepository
}

// NewAnnouncementService is the constructor for announcementService.
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) usecase.AnnouncementUsecase {
	return &announcementService{announcementRepo: announcementRepo}
}

func (srv *announcementService) Create(ctx context.Context, input *usecase.CreateAnnouncementInput) (string, error) {
	announcement := &entity.Announcement{
		Title:       input.Title,
		Description: input.Description,
		Date:        time.Now(),
	}

	id, err := srv.announcementRepo.Insert(ctx, announcement)
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to post announcement")
	}

	return id, nil
}

func (srv *announcementService) List(ctx context.Context) ([]*entity.Announcement, error) {
	announcements, err := srv.announcementRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch announcements")
	}

	return announcements, nil
}
