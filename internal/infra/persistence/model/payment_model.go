package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bmshub/internal/domain/entity"
)

// PaymentModel mirrors documents in the 'payments' collection.
type PaymentModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	AgreementID   string             `bson:"agreementId"`
	UserEmail     string             `bson:"userEmail"`
	Amount        int64              `bson:"amount"`
	Month         string             `bson:"month,omitempty"`
	TransactionID string             `bson:"transactionId"`
	PaymentMethod string             `bson:"paymentMethod"`
	Date          time.Time          `bson:"date"`
}

// CollectionName returns the backing collection.
func (PaymentModel) CollectionName() string {
	return "payments"
}

// ToPaymentDomain maps the persistence document to a pure domain entity.
func ToPaymentDomain(m *PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            m.ID.Hex(),
		AgreementID:   m.AgreementID,
		UserEmail:     m.UserEmail,
		Amount:        m.Amount,
		Month:         m.Month,
		TransactionID: m.TransactionID,
		PaymentMethod: m.PaymentMethod,
		Date:          m.Date,
	}
}

// FromPaymentDomain maps a domain entity to its persistence document.
func FromPaymentDomain(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		AgreementID:   payment.AgreementID,
		UserEmail:     payment.UserEmail,
		Amount:        payment.Amount,
		Month:         payment.Month,
		TransactionID: payment.TransactionID,
		PaymentMethod: payment.PaymentMethod,
		Date:          payment.Date,
	}
}
