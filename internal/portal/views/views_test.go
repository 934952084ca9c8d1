package views

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
	"github.com/konaseema/zpportal/internal/portal/resource"
)

type fakeAPI struct {
	mu        sync.Mutex
	schools   []*models.School
	alumni    []*models.Alumni
	donations []*models.Donation
	events    []*models.Event
	users     []*models.User
	failNews  bool
	posted    []dto.DonationRequest
}

func strPtr(s string) *string { return &s }

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		schools: []*models.School{
			{ID: "school-001", Name: "ZPHS Amalapuram"},
			{ID: "school-002", Name: "ZPHS Razole"},
		},
		alumni: []*models.Alumni{
			{ID: "a1", SchoolID: "school-001", BatchYear: 2010, WillingToMentor: true},
			{ID: "a2", SchoolID: "school-001", BatchYear: 2015},
			{ID: "a3", SchoolID: "school-001", BatchYear: 2010, WillingToMentor: true},
		},
		donations: []*models.Donation{
			{ID: "d1", Amount: 1000, SchoolID: strPtr("school-001")},
			{ID: "d2", Amount: 500},
		},
		users: []*models.User{
			{ID: "u1", Name: "Admin", Role: models.RoleAdmin, Approved: true},
			{ID: "u2", Name: "Sita", Role: models.RoleAlumni},
			{ID: "u3", Name: "Ramu", Role: models.RoleAlumni},
			{ID: "u4", Name: "Kiran", Role: models.RoleStudent},
		},
	}
}

func (f *fakeAPI) ListSchools(context.Context, apiclient.SchoolQuery) ([]*models.School, error) {
	return f.schools, nil
}

func (f *fakeAPI) GetSchool(_ context.Context, id string) (*models.School, error) {
	for _, s := range f.schools {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, &apiclient.Error{Status: http.StatusNotFound, Message: "School not found"}
}

func (f *fakeAPI) ListAlumni(context.Context, apiclient.AlumniQuery) ([]*models.Alumni, error) {
	return f.alumni, nil
}

func (f *fakeAPI) ListDonations(context.Context, string) ([]*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Donation(nil), f.donations...), nil
}

func (f *fakeAPI) CreateDonation(_ context.Context, req dto.DonationRequest) (*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted = append(f.posted, req)
	d := &models.Donation{ID: "d-new", DonorName: req.DonorName, Amount: req.Amount, SchoolID: req.SchoolID, PaymentStatus: models.PaymentCompleted}
	f.donations = append([]*models.Donation{d}, f.donations...)
	return d, nil
}

func (f *fakeAPI) ListEvents(context.Context, string) ([]*models.Event, error) {
	return f.events, nil
}

func (f *fakeAPI) RSVP(_ context.Context, id string) (*models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			updated := *e
			updated.RSVPCount++
			return &updated, nil
		}
	}
	return nil, &apiclient.Error{Status: http.StatusNotFound, Message: "Event not found"}
}

func (f *fakeAPI) ListForumPosts(context.Context, string) ([]*models.ForumPost, error) {
	return []*models.ForumPost{{ID: "p1", Title: "Reunion"}}, nil
}

func (f *fakeAPI) ListNews(context.Context, string) ([]*models.News, error) {
	if f.failNews {
		return nil, &apiclient.Error{Status: http.StatusInternalServerError, Message: "boom"}
	}
	return []*models.News{{ID: "n1", Title: "Sports day"}}, nil
}

func (f *fakeAPI) ListGalleries(context.Context, string) ([]*models.Gallery, error) {
	return []*models.Gallery{}, nil
}

func (f *fakeAPI) ListSchoolNeeds(context.Context, string) ([]*models.SchoolNeed, error) {
	return []*models.SchoolNeed{}, nil
}

func (f *fakeAPI) AdminStats(context.Context) (*dto.AdminStats, error) {
	return &dto.AdminStats{TotalSchools: int64(len(f.schools))}, nil
}

func (f *fakeAPI) ListUsers(context.Context, models.RoleType) ([]*models.User, error) {
	return f.users, nil
}

func (f *fakeAPI) ApproveUser(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			approved := *u
			approved.Approved = true
			return &approved, nil
		}
	}
	return nil, &apiclient.Error{Status: http.StatusNotFound, Message: "User not found"}
}

func TestSchoolSearchWithoutMatchIsExplicitlyEmpty(t *testing.T) {
	v := NewSchoolDirectory(newFakeAPI(), "nellore", zerolog.Nop())
	require.NoError(t, v.Load(context.Background()))

	assert.Empty(t, v.Schools())
	assert.True(t, v.NoMatches())

	v = NewSchoolDirectory(newFakeAPI(), "RAZ", zerolog.Nop())
	require.NoError(t, v.Load(context.Background()))
	require.Len(t, v.Schools(), 1)
	assert.Equal(t, "school-002", v.Schools()[0].ID)
	assert.False(t, v.NoMatches())
}

func TestSchoolDetailPartialFailure(t *testing.T) {
	api := newFakeAPI()
	api.failNews = true
	v := NewSchoolDetail(api, "school-001", zerolog.Nop())

	err := v.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, resource.StateErrored, v.State())

	require.NotNil(t, v.School())
	assert.Equal(t, "ZPHS Amalapuram", v.School().Name)
	assert.Len(t, v.Alumni(), 3)
	assert.Equal(t, 2, v.Mentors())
	assert.Nil(t, v.News())
	assert.Error(t, v.Err(SliceNews))
	assert.False(t, v.NotFound())
}

func TestSchoolDetailNotFound(t *testing.T) {
	v := NewSchoolDetail(newFakeAPI(), "school-999", zerolog.Nop())
	require.Error(t, v.Load(context.Background()))
	assert.True(t, v.NotFound())
}

func TestDonationAddsExactlyOneEntry(t *testing.T) {
	api := newFakeAPI()
	v := NewDonations(api, zerolog.Nop())
	require.NoError(t, v.Load(context.Background()))

	before := len(v.Donations())
	total := v.Total()
	require.Equal(t, 1500.0, total)

	err := v.Donate(context.Background(), DonationForm{
		DonorName: "Lakshmi", DonorEmail: "lakshmi@example.com", Amount: "2,500", SchoolID: "school-002",
	})
	require.NoError(t, err)

	assert.Len(t, v.Donations(), before+1)
	assert.Equal(t, total+2500, v.Total())
	assert.Equal(t, 2, v.SchoolsSupported())
	assert.Equal(t, "ZPHS Razole", v.SchoolName(v.Donations()[0].SchoolID))
	assert.Equal(t, "General Fund", v.SchoolName(nil))

	notice, ok := v.Notice()
	require.True(t, ok)
	assert.Equal(t, resource.NoticeSuccess, notice.Kind)

	// Reloading from the backend shows the same single new entry.
	require.NoError(t, v.Load(context.Background()))
	assert.Len(t, v.Donations(), before+1)
}

func TestDonationRejectedLocally(t *testing.T) {
	for _, amount := range []string{"0", "-100", "ten", ""} {
		api := newFakeAPI()
		v := NewDonations(api, zerolog.Nop())
		require.NoError(t, v.Load(context.Background()))

		err := v.Donate(context.Background(), DonationForm{DonorName: "Lakshmi", DonorEmail: "lakshmi@example.com", Amount: amount})
		assert.True(t, resource.IsValidation(err), amount)
		assert.True(t, errors.Is(err, resource.ErrInvalidAmount), amount)
		assert.Empty(t, api.posted, amount)
		assert.Len(t, v.Donations(), 2)
		assert.Equal(t, resource.StateLoaded, v.State())
	}
}

func TestApproveDropsPendingByOne(t *testing.T) {
	v := NewAdminDashboard(newFakeAPI(), zerolog.Nop())
	require.NoError(t, v.Load(context.Background()))
	require.Len(t, v.Pending(), 2)

	require.NoError(t, v.Approve(context.Background(), "u2"))
	assert.Len(t, v.Pending(), 1)
	assert.Len(t, v.Users(), 4)
	for _, u := range v.Users() {
		if u.ID == "u2" {
			assert.True(t, u.Approved)
		}
	}

	err := v.Approve(context.Background(), "ghost")
	assert.True(t, apiclient.IsNotFound(err))
	assert.Len(t, v.Pending(), 1)
	notice, _ := v.Notice()
	assert.Equal(t, "Error approving user", notice.Message)
}

func TestEventsSplitAndRSVP(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	api := newFakeAPI()
	api.events = []*models.Event{
		{ID: "e1", Title: "Science fair", EventDate: now.AddDate(0, 1, 0)},
		{ID: "e2", Title: "Annual day", EventDate: now.AddDate(0, -1, 0)},
		{ID: "e3", Title: "Alumni meet", EventDate: now.AddDate(0, 0, 7)},
	}
	v := NewEvents(api, zerolog.Nop())
	v.now = func() time.Time { return now }
	require.NoError(t, v.Load(context.Background()))

	upcoming := v.Upcoming()
	require.Len(t, upcoming, 2)
	assert.Equal(t, "e3", upcoming[0].ID)
	require.Len(t, v.Past(), 1)

	require.NoError(t, v.RSVP(context.Background(), "e1"))
	for _, e := range v.All() {
		if e.ID == "e1" {
			assert.Equal(t, 1, e.RSVPCount)
		}
	}
	assert.Len(t, v.All(), 3)
}

func TestAlumniPortalDerivedValues(t *testing.T) {
	v := NewAlumniPortal(newFakeAPI(), zerolog.Nop())
	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, 2, v.Mentors())
	assert.Equal(t, []int{2015, 2010}, v.Batches())
	assert.Len(t, v.Posts(), 1)
}
