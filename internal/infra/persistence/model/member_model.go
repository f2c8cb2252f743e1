package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bmshub/internal/domain/entity"
)

// MemberModel mirrors documents in the 'members' collection.
type MemberModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// CollectionName returns the backing collection.
func (MemberModel) CollectionName() string {
	return "members"
}

// ToMemberDomain maps the persistence document to a pure domain entity.
func ToMemberDomain(m *MemberModel) *entity.Member {
	return &entity.Member{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Status:    entity.MemberStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// FromMemberDomain maps a domain entity to its persistence document.
func FromMemberDomain(member *entity.Member) *MemberModel {
	return &MemberModel{
		Name:      member.Name,
		Email:     member.Email,
		Status:    string(member.Status),
		CreatedAt: member.CreatedAt,
	}
}
