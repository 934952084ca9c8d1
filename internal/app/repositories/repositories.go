package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
)

// Listing caps applied when a caller does not ask for fewer rows.
const (
	DefaultListLimit = 100
	ContentListLimit = 50
)

// IUserRepository is the user storage used by the auth and admin services.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, role models.RoleType) ([]*models.User, error)
	ApproveUser(ctx context.Context, id string) (*models.User, error)
}

// ISchoolRepository stores schools and mandals.
type ISchoolRepository interface {
	CreateSchool(ctx context.Context, school *models.School) error
	GetSchoolByID(ctx context.Context, id string) (*models.School, error)
	ListSchools(ctx context.Context, filter SchoolFilter) ([]*models.School, error)
	UpdateSchool(ctx context.Context, school *models.School) error
	CreateMandal(ctx context.Context, mandal *models.Mandal) error
	ListMandals(ctx context.Context) ([]*models.Mandal, error)
}

// IAlumniRepository stores alumni profiles.
type IAlumniRepository interface {
	CreateAlumni(ctx context.Context, alumni *models.Alumni) error
	ListAlumni(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error)
}

// IDonationRepository stores donations.
type IDonationRepository interface {
	CreateDonation(ctx context.Context, donation *models.Donation) error
	ListDonations(ctx context.Context, schoolID string) ([]*models.Donation, error)
}

// IEventRepository stores events.
type IEventRepository interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	ListEvents(ctx context.Context, schoolID string) ([]*models.Event, error)
	IncrementRSVP(ctx context.Context, id string) (*models.Event, error)
}

// IContentRepository stores forum posts, bulletins, news and galleries.
type IContentRepository interface {
	CreateForumPost(ctx context.Context, post *models.ForumPost) error
	ListForumPosts(ctx context.Context, filter models.ContentFilter) ([]*models.ForumPost, error)
	CreateBulletin(ctx context.Context, bulletin *models.Bulletin) error
	ListBulletins(ctx context.Context, filter models.ContentFilter) ([]*models.Bulletin, error)
	CreateNews(ctx context.Context, news *models.News) error
	ListNews(ctx context.Context, filter models.ContentFilter) ([]*models.News, error)
	CreateGallery(ctx context.Context, gallery *models.Gallery) error
	ListGalleries(ctx context.Context, filter models.ContentFilter) ([]*models.Gallery, error)
}

// ISchoolNeedRepository stores school needs.
type ISchoolNeedRepository interface {
	CreateSchoolNeed(ctx context.Context, need *models.SchoolNeed) error
	ListSchoolNeeds(ctx context.Context, schoolID string, status models.NeedStatus) ([]*models.SchoolNeed, error)
}

// IStatsRepository aggregates counts for the admin dashboard.
type IStatsRepository interface {
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	SchoolRepository     *SchoolRepository
	AlumniRepository     *AlumniRepository
	DonationRepository   *DonationRepository
	EventRepository      *EventRepository
	ContentRepository    *ContentRepository
	SchoolNeedRepository *SchoolNeedRepository
	StatsRepository      *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		SchoolRepository:     NewSchoolRepository(db),
		AlumniRepository:     NewAlumniRepository(db),
		DonationRepository:   NewDonationRepository(db),
		EventRepository:      NewEventRepository(db),
		ContentRepository:    NewContentRepository(db),
		SchoolNeedRepository: NewSchoolNeedRepository(db),
		StatsRepository:      NewStatsRepository(db),
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// nonNil keeps TEXT[] columns out of NULL territory.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
