package entity

import "time"

// Payment is the record of a settled charge against an agreement.
// Inserting one is always paired with flipping the agreement to paid;
// an agreement already paid accepts no further payments.
type Payment struct {
	ID            string
	AgreementID   string
	UserEmail     string
	Amount        int64
	Month         string
	TransactionID string
	PaymentMethod string
	Date          time.Time
}
