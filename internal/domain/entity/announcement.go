package entity

import "time"

// Announcement is a building-wide notice posted by an administrator.
type Announcement struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
}
