package models

import "time"

// SchoolNeed is a funding or material requirement a school publishes.
type SchoolNeed struct {
	ID           string     `json:"id"`
	SchoolID     string     `json:"school_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category" example:"infrastructure"`
	TargetAmount *float64   `json:"target_amount,omitempty"`
	RaisedAmount float64    `json:"raised_amount"`
	Status       NeedStatus `json:"status" example:"active"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Progress returns the funded share of the target in percent, capped at 100.
// Needs without a target report zero.
func (n SchoolNeed) Progress() float64 {
	if n.TargetAmount == nil || *n.TargetAmount <= 0 {
		return 0
	}
	p := n.RaisedAmount / *n.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}
