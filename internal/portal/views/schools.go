package views

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
	"github.com/konaseema/zpportal/internal/portal/resource"
)

// SchoolDirectory lists every school with a client side name filter.
type SchoolDirectory struct {
	*resource.Controller
	Query string
}

func NewSchoolDirectory(api API, query string, logger zerolog.Logger) *SchoolDirectory {
	v := &SchoolDirectory{Controller: resource.New(logger), Query: strings.TrimSpace(query)}
	v.Register(SliceSchools, fetch(func(ctx context.Context) ([]*models.School, error) {
		return api.ListSchools(ctx, apiclient.SchoolQuery{})
	}))
	return v
}

// Schools returns the schools matching Query.
func (v *SchoolDirectory) Schools() []*models.School {
	schools, _ := resource.Get[[]*models.School](v.Controller, SliceSchools)
	return FilterSchools(schools, v.Query)
}

// NoMatches reports the explicit empty state: the list loaded but nothing
// matches the query.
func (v *SchoolDirectory) NoMatches() bool {
	_, loaded := resource.Get[[]*models.School](v.Controller, SliceSchools)
	return loaded && len(v.Schools()) == 0
}

// FilterSchools keeps schools whose name contains query, ignoring case.
func FilterSchools(schools []*models.School, query string) []*models.School {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return schools
	}
	out := make([]*models.School, 0, len(schools))
	for _, s := range schools {
		if strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out
}

// SchoolDetail shows one school with its alumni, news, galleries and needs.
type SchoolDetail struct {
	*resource.Controller
	ID string
}

func NewSchoolDetail(api API, id string, logger zerolog.Logger) *SchoolDetail {
	v := &SchoolDetail{Controller: resource.New(logger), ID: id}
	v.Register(SliceSchool, fetch(func(ctx context.Context) (*models.School, error) {
		return api.GetSchool(ctx, id)
	}))
	v.Register(SliceAlumni, fetch(func(ctx context.Context) ([]*models.Alumni, error) {
		return api.ListAlumni(ctx, apiclient.AlumniQuery{SchoolID: id})
	}))
	v.Register(SliceNews, fetch(func(ctx context.Context) ([]*models.News, error) {
		return api.ListNews(ctx, id)
	}))
	v.Register(SliceGalleries, fetch(func(ctx context.Context) ([]*models.Gallery, error) {
		return api.ListGalleries(ctx, id)
	}))
	v.Register(SliceNeeds, fetch(func(ctx context.Context) ([]*models.SchoolNeed, error) {
		return api.ListSchoolNeeds(ctx, id)
	}))
	return v
}

func (v *SchoolDetail) School() *models.School {
	school, _ := resource.Get[*models.School](v.Controller, SliceSchool)
	return school
}

// NotFound reports whether the backend has no school with this id.
func (v *SchoolDetail) NotFound() bool {
	return apiclient.IsNotFound(v.Err(SliceSchool))
}

func (v *SchoolDetail) Alumni() []*models.Alumni {
	alumni, _ := resource.Get[[]*models.Alumni](v.Controller, SliceAlumni)
	return alumni
}

func (v *SchoolDetail) News() []*models.News {
	news, _ := resource.Get[[]*models.News](v.Controller, SliceNews)
	return news
}

func (v *SchoolDetail) Galleries() []*models.Gallery {
	galleries, _ := resource.Get[[]*models.Gallery](v.Controller, SliceGalleries)
	return galleries
}

func (v *SchoolDetail) Needs() []*models.SchoolNeed {
	needs, _ := resource.Get[[]*models.SchoolNeed](v.Controller, SliceNeeds)
	return needs
}

// Mentors counts alumni of the school willing to mentor.
func (v *SchoolDetail) Mentors() int {
	return CountMentors(v.Alumni())
}
