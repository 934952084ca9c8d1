// Package resource drives the data of one rendered view: a set of named
// slices fetched concurrently, followed by optional submissions that merge
// their result back into a slice.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrClosed is returned once the view has been torn down.
	ErrClosed = errors.New("view closed")
	// ErrSuperseded is returned by a load overtaken by a newer one.
	ErrSuperseded = errors.New("load superseded")
	// ErrNotLoaded is returned by Submit before its target slice has loaded.
	ErrNotLoaded = errors.New("view is not loaded")
)

// State of a Controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	case StateSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// FetchFunc loads the data of one slice.
type FetchFunc func(ctx context.Context) (any, error)

// Slice is the outcome of one fetch.
type Slice struct {
	Name   string
	Data   any
	Err    error
	Loaded bool
}

// Controller holds the slices of a view. Safe for concurrent use.
type Controller struct {
	logger zerolog.Logger

	mu         sync.Mutex
	state      State
	generation uint64
	closed     bool
	order      []string
	fetchers   map[string]FetchFunc
	slices     map[string]*Slice
	notice     *Notification
}

// New creates an idle controller without slices.
func New(logger zerolog.Logger) *Controller {
	return &Controller{
		logger:   logger,
		fetchers: make(map[string]FetchFunc),
		slices:   make(map[string]*Slice),
	}
}

// Register adds a slice fetched on every Load. Registering a name twice
// replaces its fetch function.
func (c *Controller) Register(name string, fetch FetchFunc) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.fetchers[name]; !ok {
		c.order = append(c.order, name)
	}
	c.fetchers[name] = fetch
	c.slices[name] = &Slice{Name: name}
	return c
}

// Load fetches every slice concurrently and waits for all of them. A failed
// fetch never cancels its siblings and never discards their data. The
// returned error joins the slice errors.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.generation++
	gen := c.generation
	c.state = StateLoading
	c.notice = nil
	names := append([]string(nil), c.order...)
	fetchers := make(map[string]FetchFunc, len(c.fetchers))
	for name, fetch := range c.fetchers {
		fetchers[name] = fetch
	}
	c.mu.Unlock()

	// No WithContext: a failed fetch must not cancel its siblings.
	var g errgroup.Group
	for _, name := range names {
		fetch := fetchers[name]
		g.Go(func() error {
			data, err := fetch(ctx)
			c.store(gen, name, data, err)
			return err
		})
	}
	failed := g.Wait() != nil

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if gen != c.generation {
		return ErrSuperseded
	}
	if !failed {
		c.state = StateLoaded
		return nil
	}

	var errs []error
	for _, name := range c.order {
		if err := c.slices[name].Err; err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	c.state = StateErrored
	return errors.Join(errs...)
}

func (c *Controller) store(gen uint64, name string, data any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation {
		c.logger.Debug().Str("slice", name).Msg("Dropping stale fetch result")
		return
	}
	slice := c.slices[name]
	if err != nil {
		slice.Err = err
		slice.Data = nil
		slice.Loaded = false
		c.logger.Warn().Err(err).Str("slice", name).Msg("Slice fetch failed")
		return
	}
	slice.Err = nil
	slice.Data = data
	slice.Loaded = true
}

// Close tears the view down. Results arriving later are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Slice returns a copy of the named slice.
func (c *Controller) Slice(name string) (Slice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slice, ok := c.slices[name]
	if !ok {
		return Slice{}, false
	}
	return *slice, true
}

// Err returns the fetch error of the named slice.
func (c *Controller) Err(name string) error {
	slice, _ := c.Slice(name)
	return slice.Err
}

// Failed reports whether the named slice failed its last fetch.
func (c *Controller) Failed(name string) bool {
	return c.Err(name) != nil
}

// Loaded reports whether the named slice holds data.
func (c *Controller) Loaded(name string) bool {
	slice, _ := c.Slice(name)
	return slice.Loaded
}

// Errors returns the failed slices by name.
func (c *Controller) Errors() map[string]error {
	c.mu.Lock()
	defer c.mu.Unlock()
	errs := make(map[string]error)
	for name, slice := range c.slices {
		if slice.Err != nil {
			errs[name] = slice.Err
		}
	}
	return errs
}

// Get returns the data of a loaded slice as T.
func Get[T any](c *Controller, name string) (T, bool) {
	var zero T
	slice, ok := c.Slice(name)
	if !ok || !slice.Loaded {
		return zero, false
	}
	data, ok := slice.Data.(T)
	if !ok {
		return zero, false
	}
	return data, true
}

// Notice returns the pending notification, if any.
func (c *Controller) Notice() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notice == nil {
		return Notification{}, false
	}
	return *c.notice, true
}

func (c *Controller) notify(kind NoticeKind, message string) {
	c.notice = &Notification{Kind: kind, Message: message}
}
