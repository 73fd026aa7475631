package postgres

import (
	"time"
)

/*
 * 'RsvpResponse' is a guest's RSVP as stored in the rsvp_responses table.
 * The datastore assigns the id and created_at; this service only inserts,
 * it never reads rows back (except the keepalive probe).
 */
type RsvpResponse struct {
	ID           int64   `gorm:"primaryKey"`
	Name         string  `gorm:"size:30;not null"`
	Phone        string  `gorm:"size:30;not null"`
	Email        *string `gorm:"size:100"`
	Attendance   string  `gorm:"size:20;not null"`
	GuestCount   *int
	HasChildren  *string `gorm:"size:10"`
	ChildrenAges *string
	Note         *string
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName keeps the table name aligned with the Supabase collection.
func (RsvpResponse) TableName() string {
	return "rsvp_responses"
}
