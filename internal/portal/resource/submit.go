package resource

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoticeKind distinguishes success from failure notifications.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notification is the transient message shown after a submission.
type Notification struct {
	Kind    NoticeKind
	Message string
}

// ErrInvalidAmount is returned by ParseAmount.
var ErrInvalidAmount = errors.New("amount must be a number greater than zero")

// ValidationError marks a submission rejected before any request was sent.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err was raised by local validation.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Submission describes one mutation of a loaded view.
type Submission struct {
	// Target is the slice the created entity is merged into.
	Target string
	// Validate runs before anything is sent.
	Validate func() error
	Send     func(ctx context.Context) (any, error)
	// Merge folds the created entity into the target slice data.
	Merge func(current, created any) any
	// Success is the notification shown on acceptance.
	Success string
	// Failure renders the notification for a rejected submission.
	Failure func(err error) string
}

// Submit runs sub against a loaded view. The target slice must be loaded;
// a failed sibling slice does not block it. Rejections, local or remote,
// leave the view in the state it had before with an error notification.
func (c *Controller) Submit(ctx context.Context, sub Submission) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.submittable(sub.Target) {
		c.mu.Unlock()
		return ErrNotLoaded
	}
	if sub.Validate != nil {
		if err := sub.Validate(); err != nil {
			c.notify(NoticeError, err.Error())
			c.mu.Unlock()
			return &ValidationError{Err: err}
		}
	}
	previous := c.state
	c.state = StateSubmitting
	c.notice = nil
	gen := c.generation
	c.mu.Unlock()

	created, err := sub.Send(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if gen != c.generation {
		return ErrSuperseded
	}
	c.state = previous

	if err != nil {
		message := "Request failed"
		if sub.Failure != nil {
			message = sub.Failure(err)
		}
		c.notify(NoticeError, message)
		return err
	}

	if sub.Target != "" && sub.Merge != nil {
		if slice, ok := c.slices[sub.Target]; ok {
			slice.Data = sub.Merge(slice.Data, created)
			slice.Loaded = true
			slice.Err = nil
		}
	}
	if sub.Success != "" {
		c.notify(NoticeSuccess, sub.Success)
	}
	return nil
}

// submittable reports whether a submission merging into target may start.
// Without a target every slice must have loaded. Callers hold c.mu.
func (c *Controller) submittable(target string) bool {
	if target == "" {
		return c.state == StateLoaded
	}
	if c.state != StateLoaded && c.state != StateErrored {
		return false
	}
	slice, ok := c.slices[target]
	return ok && slice.Loaded
}

// Upsert replaces the item with the same identifier or, when there is
// none, puts item first.
func Upsert[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	out := make([]T, 0, len(items)+1)
	replaced := false
	for _, existing := range items {
		if id(existing) == key {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append([]T{item}, out...)
	}
	return out
}

// UpsertMerge adapts Upsert to Submission.Merge for slices holding []T.
func UpsertMerge[T any](id func(T) string) func(current, created any) any {
	return func(current, created any) any {
		items, _ := current.([]T)
		item, ok := created.(T)
		if !ok {
			return items
		}
		return Upsert(items, item, id)
	}
}

// ParseAmount reads a monetary amount typed by a visitor. Thousands
// separators and a leading rupee sign are accepted.
func ParseAmount(text string) (float64, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "₹")
	cleaned = strings.ReplaceAll(strings.TrimSpace(cleaned), ",", "")
	if cleaned == "" {
		return 0, ErrInvalidAmount
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}
