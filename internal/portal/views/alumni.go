package views

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
	"github.com/konaseema/zpportal/internal/portal/resource"
)

// AlumniPortal shows the alumni network and recent forum discussions.
type AlumniPortal struct {
	*resource.Controller
}

func NewAlumniPortal(api API, logger zerolog.Logger) *AlumniPortal {
	v := &AlumniPortal{Controller: resource.New(logger)}
	v.Register(SliceAlumni, fetch(func(ctx context.Context) ([]*models.Alumni, error) {
		return api.ListAlumni(ctx, apiclient.AlumniQuery{})
	}))
	v.Register(SliceForum, fetch(func(ctx context.Context) ([]*models.ForumPost, error) {
		return api.ListForumPosts(ctx, "")
	}))
	return v
}

func (v *AlumniPortal) Alumni() []*models.Alumni {
	alumni, _ := resource.Get[[]*models.Alumni](v.Controller, SliceAlumni)
	return alumni
}

func (v *AlumniPortal) Posts() []*models.ForumPost {
	posts, _ := resource.Get[[]*models.ForumPost](v.Controller, SliceForum)
	return posts
}

func (v *AlumniPortal) Mentors() int {
	return CountMentors(v.Alumni())
}

func (v *AlumniPortal) Batches() []int {
	return Batches(v.Alumni())
}

// CountMentors counts profiles willing to mentor.
func CountMentors(alumni []*models.Alumni) int {
	n := 0
	for _, a := range alumni {
		if a.WillingToMentor {
			n++
		}
	}
	return n
}

// Batches returns the distinct batch years, newest first.
func Batches(alumni []*models.Alumni) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, a := range alumni {
		if !seen[a.BatchYear] {
			seen[a.BatchYear] = true
			years = append(years, a.BatchYear)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
