package entity

import "time"

// AgreementStatus is the lifecycle state of a rental agreement request.
//
// pending -> checked  (accepted or rejected by an admin)
// pending/checked -> paid  (successful payment recording)
//
// checked and paid are terminal; no automatic transitions leave them.
type AgreementStatus string

const (
	AgreementPending AgreementStatus = "pending"
	AgreementChecked AgreementStatus = "checked"
	AgreementPaid    AgreementStatus = "paid"
)

// Agreement is a user's request to rent a specific apartment. At most one
// pending agreement may exist per (UserEmail, ApartmentNo) pair; the store
// enforces this with a partial unique index.
type Agreement struct {
	ID          string
	UserEmail   string
	UserName    string
	ApartmentNo string
	Floor       string
	Block       string
	Rent        int64
	Status      AgreementStatus
	CreatedAt   time.Time
}
