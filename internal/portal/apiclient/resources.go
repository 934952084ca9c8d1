package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
)

// SchoolQuery filters the school directory.
type SchoolQuery struct {
	Search   string
	MandalID string
}

// AlumniQuery filters alumni listings. Zero values are ignored.
type AlumniQuery struct {
	SchoolID  string
	BatchYear int
}

func schoolParam(schoolID string) url.Values {
	q := url.Values{}
	if schoolID != "" {
		q.Set("school_id", schoolID)
	}
	return q
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. The new account is not logged in.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Me returns the user the client's token belongs to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Identify resolves token to its user without changing the client.
func (c *Client) Identify(ctx context.Context, token string) (*models.User, error) {
	return c.WithToken(token).Me(ctx)
}

func (c *Client) ListSchools(ctx context.Context, query SchoolQuery) ([]*models.School, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.MandalID != "" {
		q.Set("mandal_id", query.MandalID)
	}
	var schools []*models.School
	if err := c.get(ctx, "/schools", q, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

func (c *Client) GetSchool(ctx context.Context, id string) (*models.School, error) {
	var school models.School
	if err := c.get(ctx, "/schools/"+url.PathEscape(id), nil, &school); err != nil {
		return nil, err
	}
	return &school, nil
}

func (c *Client) ListMandals(ctx context.Context) ([]*models.Mandal, error) {
	var mandals []*models.Mandal
	if err := c.get(ctx, "/mandals", nil, &mandals); err != nil {
		return nil, err
	}
	return mandals, nil
}

func (c *Client) ListAlumni(ctx context.Context, query AlumniQuery) ([]*models.Alumni, error) {
	q := schoolParam(query.SchoolID)
	if query.BatchYear > 0 {
		q.Set("batch_year", strconv.Itoa(query.BatchYear))
	}
	var alumni []*models.Alumni
	if err := c.get(ctx, "/alumni", q, &alumni); err != nil {
		return nil, err
	}
	return alumni, nil
}

func (c *Client) ListDonations(ctx context.Context, schoolID string) ([]*models.Donation, error) {
	var donations []*models.Donation
	if err := c.get(ctx, "/donations", schoolParam(schoolID), &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (c *Client) CreateDonation(ctx context.Context, req dto.DonationRequest) (*models.Donation, error) {
	var donation models.Donation
	if err := c.do(ctx, http.MethodPost, "/donations", nil, req, &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

func (c *Client) ListEvents(ctx context.Context, schoolID string) ([]*models.Event, error) {
	var events []*models.Event
	if err := c.get(ctx, "/events", schoolParam(schoolID), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// RSVP registers attendance and returns the event with its new count.
func (c *Client) RSVP(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(eventID)+"/rsvp", nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) ListForumPosts(ctx context.Context, schoolID string) ([]*models.ForumPost, error) {
	var posts []*models.ForumPost
	if err := c.get(ctx, "/forums/posts", schoolParam(schoolID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) ListBulletins(ctx context.Context, schoolID string) ([]*models.Bulletin, error) {
	var bulletins []*models.Bulletin
	if err := c.get(ctx, "/bulletins", schoolParam(schoolID), &bulletins); err != nil {
		return nil, err
	}
	return bulletins, nil
}

func (c *Client) ListNews(ctx context.Context, schoolID string) ([]*models.News, error) {
	var news []*models.News
	if err := c.get(ctx, "/news", schoolParam(schoolID), &news); err != nil {
		return nil, err
	}
	return news, nil
}

func (c *Client) ListGalleries(ctx context.Context, schoolID string) ([]*models.Gallery, error) {
	var galleries []*models.Gallery
	if err := c.get(ctx, "/galleries", schoolParam(schoolID), &galleries); err != nil {
		return nil, err
	}
	return galleries, nil
}

func (c *Client) ListSchoolNeeds(ctx context.Context, schoolID string) ([]*models.SchoolNeed, error) {
	var needs []*models.SchoolNeed
	if err := c.get(ctx, "/school-needs", schoolParam(schoolID), &needs); err != nil {
		return nil, err
	}
	return needs, nil
}

func (c *Client) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	var stats dto.AdminStats
	if err := c.get(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ListUsers(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", string(role))
	}
	var users []*models.User
	if err := c.get(ctx, "/admin/users", q, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ApproveUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(userID)+"/approve", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
