// Package session holds the signed-in state of one portal visitor. A Store
// is created per request from the durable token storage and is the only
// writer of that state.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
)

// ErrMissingCredentials is returned by Login before any request is made.
var ErrMissingCredentials = errors.New("email and password are required")

// API is the part of the backend the store talks to.
type API interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Identify(ctx context.Context, token string) (*models.User, error)
}

// Credentials are what a visitor types into the login form.
type Credentials struct {
	Email    string
	Password string
}

// Session is a token together with the user it was issued to.
type Session struct {
	Token string
	User  models.User
}

// Store owns the session of one visitor.
type Store struct {
	api     API
	storage TokenStorage
	logger  zerolog.Logger

	mu      sync.RWMutex
	current *Session

	bootOnce sync.Once
	ready    chan struct{}
	bootErr  error
}

// NewStore creates an empty store. Call Bootstrap before reading it.
func NewStore(api API, storage TokenStorage, logger zerolog.Logger) *Store {
	return &Store{
		api:     api,
		storage: storage,
		logger:  logger,
		ready:   make(chan struct{}),
	}
}

// Bootstrap restores the session from the persisted token. A token the
// backend rejects as unauthorized is cleared; any other failure leaves the
// token in place and the session empty. Only the first call does any work.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.bootOnce.Do(func() {
		s.bootErr = s.bootstrap(ctx)
		close(s.ready)
	})
	return s.bootErr
}

func (s *Store) bootstrap(ctx context.Context) error {
	token, ok := s.storage.Load()
	if !ok {
		return nil
	}

	user, err := s.api.Identify(ctx, token)
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			s.logger.Info().Msg("Stored session token rejected, clearing it")
			if clearErr := s.storage.Clear(); clearErr != nil {
				s.logger.Warn().Err(clearErr).Msg("Failed to clear session token")
			}
			return nil
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	s.set(&Session{Token: token, User: *user})
	return nil
}

// Ready is closed once Bootstrap has finished.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Wait blocks until Bootstrap has finished or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login authenticates against the backend. On success the token is
// persisted and the user becomes current; on failure the session is empty.
func (s *Store) Login(ctx context.Context, creds Credentials) (*models.User, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}

	resp, err := s.api.Login(ctx, dto.LoginRequest{Email: email, Password: creds.Password})
	if err != nil {
		s.Logout()
		return nil, err
	}
	if resp.AccessToken == "" || resp.User == nil {
		s.Logout()
		return nil, &apiclient.Error{Status: 200, Message: "login response carried no session"}
	}

	if err := s.storage.Save(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}
	s.set(&Session{Token: resp.AccessToken, User: *resp.User})

	// A fresh login settles the session even if Bootstrap never ran.
	s.bootOnce.Do(func() { close(s.ready) })

	user := *resp.User
	return &user, nil
}

// Logout forgets the session and the persisted token. It makes no request.
func (s *Store) Logout() {
	if err := s.storage.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to clear session token")
	}
	s.set(nil)
}

func (s *Store) set(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
}

// Current returns a copy of the session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// User returns the signed-in user or nil.
func (s *Store) User() *models.User {
	current, ok := s.Current()
	if !ok {
		return nil
	}
	return &current.User
}

// Token returns the session token or an empty string.
func (s *Store) Token() string {
	current, _ := s.Current()
	return current.Token
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// HasRole reports whether the signed-in user has one of roles.
func (s *Store) HasRole(roles ...models.RoleType) bool {
	current, ok := s.Current()
	if !ok {
		return false
	}
	for _, role := range roles {
		if current.User.Role == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the signed-in user may use the admin views.
func (s *Store) IsStaff() bool {
	current, ok := s.Current()
	return ok && current.User.Role.IsStaff()
}
