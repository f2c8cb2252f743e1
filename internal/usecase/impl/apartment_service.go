package impl

import (
	"context"

	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	"bmshub/internal/usecase"
)

// apartmentService implements the ApartmentUsecase interface.
type apartmentService struct {
	apartmentRepo repository.ApartmentRepository
}

// NewApartmentService is the constructor for apartmentService.
func NewApartmentService(apartmentRepo repository.ApartmentRepository) usecase.ApartmentUsecase {
	return &apartmentService{apartmentRepo: apartmentRepo}
}

func (srv *apartmentService) Create(ctx context.Context, input *usecase.CreateApartmentInput) (string, error) {
	status := input.Status
	if status == "" {
		status = entity.ApartmentPending
	}

	apartment := &entity.Apartment{
		ApartmentNo: input.ApartmentNo,
		Floor:       input.Floor,
		Block:       input.Block,
		Rent:        input.Rent,
		Status:      status,
	}

	id, err := srv.apartmentRepo.Insert(ctx, apartment)
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to insert apartment")
	}

	return id, nil
}

func (srv *apartmentService) List(ctx context.Context) ([]*entity.Apartment, error) {
	apartments, err := srv.apartmentRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch apartments")
	}

	return apartments, nil
}
