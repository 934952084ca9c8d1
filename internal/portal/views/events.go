package views

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/portal/resource"
)

// Events lists district events and takes RSVPs.
type Events struct {
	*resource.Controller
	api API
	now func() time.Time
}

func NewEvents(api API, logger zerolog.Logger) *Events {
	v := &Events{Controller: resource.New(logger), api: api, now: time.Now}
	v.Register(SliceEvents, fetch(func(ctx context.Context) ([]*models.Event, error) {
		return api.ListEvents(ctx, "")
	}))
	return v
}

func (v *Events) All() []*models.Event {
	events, _ := resource.Get[[]*models.Event](v.Controller, SliceEvents)
	return events
}

// Upcoming returns events from now on, soonest first.
func (v *Events) Upcoming() []*models.Event {
	upcoming, _ := SplitEvents(v.All(), v.now())
	return upcoming
}

// Past returns finished events, most recent first.
func (v *Events) Past() []*models.Event {
	_, past := SplitEvents(v.All(), v.now())
	return past
}

// RSVP registers attendance and replaces the event with the updated count.
func (v *Events) RSVP(ctx context.Context, eventID string) error {
	return v.Submit(ctx, resource.Submission{
		Target: SliceEvents,
		Send: func(ctx context.Context) (any, error) {
			return v.api.RSVP(ctx, eventID)
		},
		Merge:   resource.UpsertMerge[*models.Event](func(e *models.Event) string { return e.ID }),
		Success: "RSVP recorded, see you there!",
		Failure: failureMessage,
	})
}

// SplitEvents partitions events around now.
func SplitEvents(events []*models.Event, now time.Time) (upcoming, past []*models.Event) {
	upcoming = make([]*models.Event, 0)
	past = make([]*models.Event, 0)
	for _, e := range events {
		if e.EventDate.Before(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].EventDate.Before(upcoming[j].EventDate) })
	sort.SliceStable(past, func(i, j int) bool { return past[i].EventDate.After(past[j].EventDate) })
	return upcoming, past
}
