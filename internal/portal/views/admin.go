package views

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/portal/resource"
)

// AdminDashboard shows portal statistics and the user approval queue.
type AdminDashboard struct {
	*resource.Controller
	api API
}

func NewAdminDashboard(api API, logger zerolog.Logger) *AdminDashboard {
	v := &AdminDashboard{Controller: resource.New(logger), api: api}
	v.Register(SliceStats, fetch(func(ctx context.Context) (*dto.AdminStats, error) {
		return api.AdminStats(ctx)
	}))
	v.Register(SliceUsers, fetch(func(ctx context.Context) ([]*models.User, error) {
		return api.ListUsers(ctx, "")
	}))
	return v
}

func (v *AdminDashboard) Stats() *dto.AdminStats {
	stats, _ := resource.Get[*dto.AdminStats](v.Controller, SliceStats)
	return stats
}

func (v *AdminDashboard) Users() []*models.User {
	users, _ := resource.Get[[]*models.User](v.Controller, SliceUsers)
	return users
}

// Pending returns the alumni still waiting for approval.
func (v *AdminDashboard) Pending() []*models.User {
	return PendingApprovals(v.Users())
}

// Approve approves a user and replaces it in the user list.
func (v *AdminDashboard) Approve(ctx context.Context, userID string) error {
	return v.Submit(ctx, resource.Submission{
		Target: SliceUsers,
		Send: func(ctx context.Context) (any, error) {
			return v.api.ApproveUser(ctx, userID)
		},
		Merge:   resource.UpsertMerge[*models.User](func(u *models.User) string { return u.ID }),
		Success: "User approved successfully",
		Failure: func(error) string { return "Error approving user" },
	})
}

// PendingApprovals filters alumni accounts that are not approved yet.
func PendingApprovals(users []*models.User) []*models.User {
	out := make([]*models.User, 0)
	for _, u := range users {
		if u.IsPendingApproval() {
			out = append(out, u)
		}
	}
	return out
}
