package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bmshub/internal/domain/entity"
)

// ApartmentModel mirrors documents in the 'apartments' collection.
type ApartmentModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ApartmentNo string             `bson:"apartmentNo"`
	Floor       string             `bson:"floor"`
	Block       string             `bson:"block"`
	Rent        int64              `bson:"rent"`
	Status      string             `bson:"status"`
}

// CollectionName returns the backing collection.
func (ApartmentModel) CollectionName() string {
	return "apartments"
}

// ToApartmentDomain maps the persistence document to a pure domain entity.
func ToApartmentDomain(m *ApartmentModel) *entity.Apartment {
	return &entity.Apartment{
		ID:          m.ID.Hex(),
		ApartmentNo: m.ApartmentNo,
		Floor:       m.Floor,
		Block:       m.Block,
		Rent:        m.Rent,
		Status:      entity.ApartmentStatus(m.Status),
	}
}

// FromApartmentDomain maps a domain entity to its persistence document.
func FromApartmentDomain(apartment *entity.Apartment) *ApartmentModel {
	return &ApartmentModel{
		ApartmentNo: apartment.ApartmentNo,
		Floor:       apartment.Floor,
		Block:       apartment.Block,
		Rent:        apartment.Rent,
		Status:      string(apartment.Status),
	}
}
