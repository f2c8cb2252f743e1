package repository

import (
	"context"

	"bmshub/internal/domain/entity"
)

// ApartmentRepository defines persistence operations for apartments.
type ApartmentRepository interface {
	// Insert persists a new apartment and returns the generated id.
	Insert(ctx context.Context, apartment *entity.Apartment) (string, error)

	// FindAll lists every apartment.
	FindAll(ctx context.Context) ([]*entity.Apartment, error)
}
