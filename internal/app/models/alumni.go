package models

import "time"

// Alumni is the profile a former student publishes on the alumni network.
type Alumni struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	SchoolID          string    `json:"school_id" example:"school-001"`
	BatchYear         int       `json:"batch_year" example:"2010"`
	CurrentProfession *string   `json:"current_profession,omitempty" example:"Software Engineer"`
	Company           *string   `json:"company,omitempty"`
	Achievements      []string  `json:"achievements"`
	WillingToMentor   bool      `json:"willing_to_mentor"`
	CreatedAt         time.Time `json:"created_at"`
}

// AlumniFilter narrows alumni listings.
type AlumniFilter struct {
	SchoolID  string
	BatchYear int
}
