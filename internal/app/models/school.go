package models

import "time"

// Mandal is an administrative sub-district grouping schools.
type Mandal struct {
	ID       string `json:"id" example:"mandal-amalapuram"`
	Name     string `json:"name" example:"Amalapuram"`
	District string `json:"district" example:"Konaseema"`
	MEOCount int    `json:"meo_count" example:"2"`
}

// School is a Zilla Parishad high school listed in the directory.
type School struct {
	ID           string    `json:"id" example:"school-001"`
	Name         string    `json:"name" example:"ZPHS Amalapuram"`
	MandalID     string    `json:"mandal_id" example:"mandal-amalapuram"`
	HMNote       *string   `json:"hm_note,omitempty"`
	Facilities   []string  `json:"facilities"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Address      *string   `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
