package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bmshub/internal/domain/entity"
)

// AnnouncementModel mirrors documents in the 'announcements' collection.
type AnnouncementModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
}

// CollectionName returns the backing collection.
func (AnnouncementModel) CollectionName() string {
	return "announcements"
}

// ToAnnouncementDomain maps the persistence document to a pure domain entity.
func ToAnnouncementDomain(m *AnnouncementModel) *entity.Announcement {
	return &entity.Announcement{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date,
	}
}

// FromAnnouncementDomain maps a domain entity to its persistence document.
func FromAnnouncementDomain(announcement *entity.Announcement) *AnnouncementModel {
	return &AnnouncementModel{
		Title:       announcement.Title,
		Description: announcement.Description,
		Date:        announcement.Date,
	}
}
