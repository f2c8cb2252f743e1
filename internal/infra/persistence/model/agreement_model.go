package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bmshub/internal/domain/entity"
)

// AgreementModel mirrors documents in the 'agreements' collection.
type AgreementModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail   string             `bson:"userEmail"`
	UserName    string             `bson:"userName"`
	ApartmentNo string             `bson:"apartmentNo"`
	Floor       string             `bson:"floor"`
	Block       string             `bson:"block"`
	Rent        int64              `bson:"rent"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// CollectionName returns the backing collection.
func (AgreementModel) CollectionName() string {
	return "agreements"
}

// ToAgreementDomain maps the persistence document to a pure domain entity.
func ToAgreementDomain(m *AgreementModel) *entity.Agreement {
	return &entity.Agreement{
		ID:          m.ID.Hex(),
		UserEmail:   m.UserEmail,
		UserName:    m.UserName,
		ApartmentNo: m.ApartmentNo,
		Floor:       m.Floor,
		Block:       m.Block,
		Rent:        m.Rent,
		Status:      entity.AgreementStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

// FromAgreementDomain maps a domain entity to its persistence document.
func FromAgreementDomain(agreement *entity.Agreement) *AgreementModel {
	return &AgreementModel{
		UserEmail:   agreement.UserEmail,
		UserName:    agreement.UserName,
		ApartmentNo: agreement.ApartmentNo,
		Floor:       agreement.Floor,
		Block:       agreement.Block,
		Rent:        agreement.Rent,
		Status:      string(agreement.Status),
		CreatedAt:   agreement.CreatedAt,
	}
}
