package entity

import "time"

// MemberStatus tracks the membership-approval track, which is separate
// from the agreement lifecycle but also mutates User.Role on activation.
type MemberStatus string

const (
	MemberPending MemberStatus = "pending"
	MemberActive  MemberStatus = "active"
)

// Member records a user's membership application.
type Member struct {
	ID        string
	Name      string
	Email     string
	Status    MemberStatus
	CreatedAt time.Time
}
