package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string
	Value float64
}

func itemID(i item) string { return i.ID }

func TestLoadKeepsSuccessfulSliceWhenSiblingFails(t *testing.T) {
	boom := errors.New("backend unavailable")
	c := New(zerolog.Nop()).
		Register("a", func(context.Context) (any, error) { return []item{{ID: "1"}}, nil }).
		Register("b", func(context.Context) (any, error) { return nil, boom })

	err := c.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateErrored, c.State())

	a, ok := Get[[]item](c, "a")
	require.True(t, ok)
	assert.Equal(t, []item{{ID: "1"}}, a)

	_, ok = Get[[]item](c, "b")
	assert.False(t, ok)
	assert.ErrorIs(t, c.Err("b"), boom)
	assert.Len(t, c.Errors(), 1)
}

func TestLoadRunsFetchesConcurrently(t *testing.T) {
	release := make(chan struct{})
	var started atomic.Int32
	fetch := func(context.Context) (any, error) {
		started.Add(1)
		<-release
		return "ok", nil
	}
	c := New(zerolog.Nop()).Register("a", fetch).Register("b", fetch)

	done := make(chan error, 1)
	go func() { done <- c.Load(context.Background()) }()

	require.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, StateLoading, c.State())
	close(release)

	require.NoError(t, <-done)
	assert.Equal(t, StateLoaded, c.State())
}

func TestCloseDropsLateResults(t *testing.T) {
	release := make(chan struct{})
	c := New(zerolog.Nop()).Register("a", func(context.Context) (any, error) {
		<-release
		return "late", nil
	})

	done := make(chan error, 1)
	go func() { done <- c.Load(context.Background()) }()
	require.Eventually(t, func() bool { return c.State() == StateLoading }, time.Second, time.Millisecond)

	c.Close()
	close(release)

	assert.ErrorIs(t, <-done, ErrClosed)
	_, ok := Get[string](c, "a")
	assert.False(t, ok)
	assert.Equal(t, StateLoading, c.State())
	assert.ErrorIs(t, c.Load(context.Background()), ErrClosed)
}

func TestNewerLoadSupersedesOlder(t *testing.T) {
	var calls atomic.Int32
	firstRelease := make(chan struct{})
	c := New(zerolog.Nop()).Register("school", func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			<-firstRelease
			return "school-001", nil
		}
		return "school-002", nil
	})

	first := make(chan error, 1)
	go func() { first <- c.Load(context.Background()) }()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	require.NoError(t, c.Load(context.Background()))
	close(firstRelease)
	assert.ErrorIs(t, <-first, ErrSuperseded)

	got, ok := Get[string](c, "school")
	require.True(t, ok)
	assert.Equal(t, "school-002", got)
	assert.Equal(t, StateLoaded, c.State())
}

func loadedController(t *testing.T, items []item) *Controller {
	t.Helper()
	c := New(zerolog.Nop()).Register("items", func(context.Context) (any, error) { return items, nil })
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestSubmitMergesExactlyOnce(t *testing.T) {
	c := loadedController(t, []item{{ID: "1", Value: 10}})
	created := item{ID: "2", Value: 25}
	sub := Submission{
		Target:  "items",
		Send:    func(context.Context) (any, error) { return created, nil },
		Merge:   UpsertMerge[item](itemID),
		Success: "Saved",
	}

	require.NoError(t, c.Submit(context.Background(), sub))
	// Replaying the same acknowledgement must not duplicate the entry.
	require.NoError(t, c.Submit(context.Background(), sub))

	items, ok := Get[[]item](c, "items")
	require.True(t, ok)
	assert.Equal(t, []item{{ID: "2", Value: 25}, {ID: "1", Value: 10}}, items)
	assert.Equal(t, StateLoaded, c.State())

	notice, ok := c.Notice()
	require.True(t, ok)
	assert.Equal(t, Notification{Kind: NoticeSuccess, Message: "Saved"}, notice)
}

func TestSubmitValidationSendsNothing(t *testing.T) {
	c := loadedController(t, nil)
	sent := false
	err := c.Submit(context.Background(), Submission{
		Target:   "items",
		Validate: func() error { return ErrInvalidAmount },
		Send: func(context.Context) (any, error) {
			sent = true
			return nil, nil
		},
	})

	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.False(t, sent)
	assert.Equal(t, StateLoaded, c.State())
	notice, ok := c.Notice()
	require.True(t, ok)
	assert.Equal(t, NoticeError, notice.Kind)
}

func TestSubmitRejectionStaysLoaded(t *testing.T) {
	c := loadedController(t, []item{{ID: "1"}})
	rejected := errors.New("rejected")

	err := c.Submit(context.Background(), Submission{
		Target:  "items",
		Send:    func(context.Context) (any, error) { return nil, rejected },
		Merge:   UpsertMerge[item](itemID),
		Failure: func(error) string { return "Error processing donation" },
	})

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, StateLoaded, c.State())
	items, _ := Get[[]item](c, "items")
	assert.Len(t, items, 1)
	notice, _ := c.Notice()
	assert.Equal(t, "Error processing donation", notice.Message)
}

func TestSubmitRequiresLoaded(t *testing.T) {
	c := New(zerolog.Nop())
	err := c.Submit(context.Background(), Submission{Send: func(context.Context) (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, ErrNotLoaded)

	c.Close()
	err = c.Submit(context.Background(), Submission{Send: func(context.Context) (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSubmitProceedsWhenOnlySiblingFailed(t *testing.T) {
	c := New(zerolog.Nop()).
		Register("items", func(context.Context) (any, error) { return []item{{ID: "1"}}, nil }).
		Register("lookup", func(context.Context) (any, error) { return nil, errors.New("backend unavailable") })
	require.Error(t, c.Load(context.Background()))
	require.Equal(t, StateErrored, c.State())
	assert.True(t, c.Failed("lookup"))
	assert.True(t, c.Loaded("items"))

	err := c.Submit(context.Background(), Submission{
		Target: "items",
		Send:   func(context.Context) (any, error) { return item{ID: "2"}, nil },
		Merge:  UpsertMerge[item](itemID),
	})
	require.NoError(t, err)

	items, _ := Get[[]item](c, "items")
	assert.Equal(t, []item{{ID: "2"}, {ID: "1"}}, items)
	// The failed sibling still needs a reload.
	assert.Equal(t, StateErrored, c.State())
	assert.True(t, c.Failed("lookup"))
}

func TestSubmitRefusesFailedTarget(t *testing.T) {
	c := New(zerolog.Nop()).
		Register("items", func(context.Context) (any, error) { return nil, errors.New("backend unavailable") })
	require.Error(t, c.Load(context.Background()))

	sent := false
	err := c.Submit(context.Background(), Submission{
		Target: "items",
		Send: func(context.Context) (any, error) {
			sent = true
			return nil, nil
		},
	})
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.False(t, sent)

	err = c.Submit(context.Background(), Submission{Send: func(context.Context) (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestParseAmount(t *testing.T) {
	valid := map[string]float64{"500": 500, " 1,250.50 ": 1250.5, "₹ 2000": 2000}
	for text, want := range valid {
		got, err := ParseAmount(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got)
	}

	for _, text := range []string{"", "abc", "0", "-5", "NaN", "Inf", "1e400"} {
		_, err := ParseAmount(text)
		assert.ErrorIs(t, err, ErrInvalidAmount, text)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "State(42)", State(42).String())
}
