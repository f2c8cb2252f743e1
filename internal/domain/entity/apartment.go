package entity

// ApartmentStatus tracks whether a unit is open for agreement requests.
type ApartmentStatus string

const (
	ApartmentPending   ApartmentStatus = "pending"
	ApartmentAvailable ApartmentStatus = "available"
)

// Apartment is a rentable unit, created by an administrator and
// read-mostly afterward.
type Apartment struct {
	ID          string
	ApartmentNo string
	Floor       string
	Block       string
	Rent        int64
	Status      ApartmentStatus
}
