package services

import (
	"context"
	"sync"
	"time"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) ListUsers(_ context.Context, role models.RoleType) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.User{}
	for _, u := range r.users {
		if role == "" || u.Role == role {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ApproveUser(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u.Approved = true
	copied := *u
	return &copied, nil
}

type fakeStatsRepo struct {
	stats *dto.AdminStats
}

func (r *fakeStatsRepo) AdminStats(context.Context) (*dto.AdminStats, error) {
	return r.stats, nil
}

type fakeDonationRepo struct {
	created []*models.Donation
}

func (r *fakeDonationRepo) CreateDonation(_ context.Context, d *models.Donation) error {
	d.CreatedAt = time.Now()
	r.created = append(r.created, d)
	return nil
}

func (r *fakeDonationRepo) ListDonations(context.Context, string) ([]*models.Donation, error) {
	return r.created, nil
}

type fakeContentRepo struct {
	repositories.IContentRepository
	posts     []*models.ForumPost
	bulletins []*models.Bulletin
}

func (r *fakeContentRepo) CreateForumPost(_ context.Context, p *models.ForumPost) error {
	r.posts = append(r.posts, p)
	return nil
}

func (r *fakeContentRepo) CreateBulletin(_ context.Context, b *models.Bulletin) error {
	r.bulletins = append(r.bulletins, b)
	return nil
}

type fakeSchoolRepo struct {
	repositories.ISchoolRepository
	created []*models.School
}

func (r *fakeSchoolRepo) CreateSchool(_ context.Context, s *models.School) error {
	if s.MandalID == "mandal-unknown" {
		return apperrors.ErrMandalNotFound
	}
	r.created = append(r.created, s)
	return nil
}

type fakeAlumniRepo struct {
	created []*models.Alumni
}

func (r *fakeAlumniRepo) CreateAlumni(_ context.Context, a *models.Alumni) error {
	r.created = append(r.created, a)
	return nil
}

func (r *fakeAlumniRepo) ListAlumni(context.Context, models.AlumniFilter) ([]*models.Alumni, error) {
	return r.created, nil
}

type fakeEventRepo struct {
	events map[string]*models.Event
}

func (r *fakeEventRepo) CreateEvent(_ context.Context, e *models.Event) error {
	r.events[e.ID] = e
	return nil
}

func (r *fakeEventRepo) ListEvents(context.Context, string) ([]*models.Event, error) {
	out := []*models.Event{}
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEventRepo) IncrementRSVP(_ context.Context, id string) (*models.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	e.RSVPCount++
	return e, nil
}

type fakeNeedRepo struct {
	calls int
}

func (r *fakeNeedRepo) CreateSchoolNeed(context.Context, *models.SchoolNeed) error {
	r.calls++
	return nil
}

func (r *fakeNeedRepo) ListSchoolNeeds(context.Context, string, models.NeedStatus) ([]*models.SchoolNeed, error) {
	r.calls++
	return []*models.SchoolNeed{}, nil
}

type sentMail struct {
	kind, to, name string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) SendWelcomeEmail(to, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{"welcome", to, name})
	return nil
}

func (m *fakeMailer) SendApprovalEmail(to, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{"approval", to, name})
	return nil
}
