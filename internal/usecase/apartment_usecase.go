package usecase

import (
	"context"

	"bmshub/internal/domain/entity"
)

// CreateApartmentInput defines the data required to register a unit.
type CreateApartmentInput struct {
	ApartmentNo string
	Floor       string
	Block       string
	Rent        int64
	Status      entity.ApartmentStatus
}

// ApartmentUsecase handles the apartment reference data.
type ApartmentUsecase interface {
	Create(ctx context.Context, input *CreateApartmentInput) (string, error)
	List(ctx context.Context) ([]*entity.Apartment, error)
}
