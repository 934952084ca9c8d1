package models

import "time"

// Event is a school or district gathering that users can RSVP to.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" example:"Alumni Meet 2024"`
	Description string    `json:"description"`
	SchoolID    *string   `json:"school_id,omitempty"`
	EventDate   time.Time `json:"event_date"`
	Location    *string   `json:"location,omitempty"`
	RSVPCount   int       `json:"rsvp_count"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
