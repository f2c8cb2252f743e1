// Package model contains the bson documents stored in MongoDB and their
// mapping to and from pure domain entities. Field names follow the wire
// format the frontend already consumes.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bmshub/internal/domain/entity"
)

// UserModel mirrors documents in the 'users' collection.
type UserModel struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty"`
	Email               string               `bson:"email"`
	Name                string               `bson:"name"`
	PhotoURL            string               `bson:"photoURL"`
	Role                string               `bson:"role"`
	CreatedAt           time.Time            `bson:"createdAt"`
	LastLogin           time.Time            `bson:"lastLogin"`
	AgreementAcceptDate *time.Time           `bson:"agreementAcceptDate"`
	RentedApartment     RentedApartmentModel `bson:"rentedApartment"`
}

// RentedApartmentModel is embedded in UserModel; all fields stay null
// until an agreement is accepted.
type RentedApartmentModel struct {
	Floor  *string `bson:"floor"`
	Block  *string `bson:"block"`
	RoomNo *string `bson:"roomNo"`
}

// CollectionName returns the backing collection.
func (UserModel) CollectionName() string {
	return "users"
}

// ToUserDomain maps the persistence document to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:                  m.ID.Hex(),
		Email:               m.Email,
		Name:                m.Name,
		PhotoURL:            m.PhotoURL,
		Role:                entity.Role(m.Role),
		CreatedAt:           m.CreatedAt,
		LastLogin:           m.LastLogin,
		AgreementAcceptDate: m.AgreementAcceptDate,
		RentedApartment: entity.RentedApartment{
			Floor:  m.RentedApartment.Floor,
			Block:  m.RentedApartment.Block,
			RoomNo: m.RentedApartment.RoomNo,
		},
	}
}

// FromUserDomain maps a domain entity to its persistence document.
// The ID is left zero so the store can generate one on insert.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		Email:               user.Email,
		Name:                user.Name,
		PhotoURL:            user.PhotoURL,
		Role:                string(user.Role),
		CreatedAt:           user.CreatedAt,
		LastLogin:           user.LastLogin,
		AgreementAcceptDate: user.AgreementAcceptDate,
		RentedApartment: RentedApartmentModel{
			Floor:  user.RentedApartment.Floor,
			Block:  user.RentedApartment.Block,
			RoomNo: user.RentedApartment.RoomNo,
		},
	}
}
