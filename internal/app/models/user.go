package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        string    `json:"id" example:"5b1f0c1e-8f3a-4d8e-9a53-0f3c2b1d7e10"`
	Email     string    `json:"email" example:"ravi@example.com"`
	Password  string    `json:"-"`
	Name      string    `json:"name" example:"Ravi Kumar"`
	Phone     *string   `json:"phone,omitempty" example:"+91 98765 43210"`
	Role      RoleType  `json:"role" example:"alumni"`
	SchoolID  *string   `json:"school_id,omitempty" example:"school-001"`
	MandalID  *string   `json:"mandal_id,omitempty" example:"mandal-amalapuram"`
	BatchYear *int      `json:"batch_year,omitempty" example:"2012"`
	Approved  bool      `json:"approved" example:"false"`
	CreatedAt time.Time `json:"created_at"`
}

// IsPendingApproval reports whether an alumni registration still waits for
// an administrator.
func (u User) IsPendingApproval() bool {
	return u.Role == RoleAlumni && !u.Approved
}
