package dto

// AdminStats summarises the portal for the admin dashboard.
type AdminStats struct {
	TotalSchools        int64   `json:"total_schools" example:"5"`
	TotalUsers          int64   `json:"total_users" example:"42"`
	TotalAlumni         int64   `json:"total_alumni" example:"17"`
	TotalDonations      int64   `json:"total_donations" example:"9"`
	TotalDonationAmount float64 `json:"total_donation_amount" example:"125000"`
	PendingApprovals    int64   `json:"pending_approvals" example:"3"`
}
