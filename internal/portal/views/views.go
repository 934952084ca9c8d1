// Package views builds the data of each portal page on top of a
// resource.Controller. Derived values are computed from the loaded slices
// on every call and never stored.
package views

import (
	"context"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
)

// API is the backend surface the views read and write.
type API interface {
	ListSchools(ctx context.Context, query apiclient.SchoolQuery) ([]*models.School, error)
	GetSchool(ctx context.Context, id string) (*models.School, error)
	ListAlumni(ctx context.Context, query apiclient.AlumniQuery) ([]*models.Alumni, error)
	ListDonations(ctx context.Context, schoolID string) ([]*models.Donation, error)
	CreateDonation(ctx context.Context, req dto.DonationRequest) (*models.Donation, error)
	ListEvents(ctx context.Context, schoolID string) ([]*models.Event, error)
	RSVP(ctx context.Context, eventID string) (*models.Event, error)
	ListForumPosts(ctx context.Context, schoolID string) ([]*models.ForumPost, error)
	ListNews(ctx context.Context, schoolID string) ([]*models.News, error)
	ListGalleries(ctx context.Context, schoolID string) ([]*models.Gallery, error)
	ListSchoolNeeds(ctx context.Context, schoolID string) ([]*models.SchoolNeed, error)
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
	ListUsers(ctx context.Context, role models.RoleType) ([]*models.User, error)
	ApproveUser(ctx context.Context, userID string) (*models.User, error)
}

// Slice names shared by the views.
const (
	SliceSchools   = "schools"
	SliceSchool    = "school"
	SliceAlumni    = "alumni"
	SliceNews      = "news"
	SliceGalleries = "galleries"
	SliceNeeds     = "needs"
	SliceForum     = "forum"
	SliceEvents    = "events"
	SliceDonations = "donations"
	SliceStats     = "stats"
	SliceUsers     = "users"
)

// fetch adapts a typed call to resource.FetchFunc.
func fetch[T any](call func(ctx context.Context) (T, error)) func(ctx context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		return call(ctx)
	}
}

func failureMessage(err error) string {
	return apiclient.MessageOf(err)
}
