package models

import "time"

// Donation is an append-only record of a pledge to the schools.
type Donation struct {
	ID            string        `json:"id"`
	DonorName     string        `json:"donor_name" example:"Lakshmi"`
	DonorEmail    string        `json:"donor_email" example:"lakshmi@example.com"`
	Amount        float64       `json:"amount" example:"5000"`
	SchoolID      *string       `json:"school_id,omitempty" example:"school-002"`
	Purpose       *string       `json:"purpose,omitempty" example:"Library books"`
	PaymentStatus PaymentStatus `json:"payment_status" example:"completed"`
	TransactionID *string       `json:"transaction_id,omitempty" example:"TXN4F9A2B7C1D0E"`
	CreatedAt     time.Time     `json:"created_at"`
}
