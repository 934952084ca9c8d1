package dto

import "time"

// SchoolRequest creates or replaces a school.
type SchoolRequest struct {
	ID           string   `json:"id,omitempty" binding:"omitempty,max=64"`
	Name         string   `json:"name" binding:"required,min=2"`
	MandalID     string   `json:"mandal_id" binding:"required"`
	HMNote       *string  `json:"hm_note,omitempty"`
	Facilities   []string `json:"facilities"`
	ContactEmail *string  `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
	Address      *string  `json:"address,omitempty"`
}

// AlumniRequest publishes the caller's alumni profile.
type AlumniRequest struct {
	SchoolID          string   `json:"school_id" binding:"required"`
	BatchYear         int      `json:"batch_year" binding:"required,min=1950,max=2100"`
	CurrentProfession *string  `json:"current_profession,omitempty"`
	Company           *string  `json:"company,omitempty"`
	Achievements      []string `json:"achievements"`
	WillingToMentor   bool     `json:"willing_to_mentor"`
}

// EventRequest creates an event.
type EventRequest struct {
	Title       string    `json:"title" binding:"required,min=3"`
	Description string    `json:"description" binding:"required"`
	SchoolID    *string   `json:"school_id,omitempty"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	Location    *string   `json:"location,omitempty"`
}

// DonationRequest records a donation.
type DonationRequest struct {
	DonorName  string  `json:"donor_name" binding:"required"`
	DonorEmail string  `json:"donor_email" binding:"required,email"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	SchoolID   *string `json:"school_id,omitempty"`
	Purpose    *string `json:"purpose,omitempty"`
}

// SchoolNeedRequest publishes a school need.
type SchoolNeedRequest struct {
	SchoolID     string   `json:"school_id" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	TargetAmount *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
}
