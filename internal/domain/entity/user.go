// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Role is the access level attached to a user account. It is derived from
// the agreement and membership lifecycles and must not be set directly
// outside of those transitions, except through the admin override endpoint.
type Role string

const (
	RoleUser   Role = "user"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// DefaultPhotoURL is used when a sign-in provides no avatar.
const DefaultPhotoURL = "https://i.ibb.co/2nqZQFz/default-avatar.png"

// User is created on first sign-in and never deleted. Role reflects the most
// recent accepted agreement or activated membership for the user's email.
type User struct {
	ID                  string
	Email               string
	Name                string
	PhotoURL            string
	Role                Role
	CreatedAt           time.Time
	LastLogin           time.Time
	AgreementAcceptDate *time.Time
	RentedApartment     RentedApartment
}

// RentedApartment points at the unit a member currently rents.
// All fields are nil until an agreement is accepted.
type RentedApartment struct {
	Floor  *string
	Block  *string
	RoomNo *string
}
