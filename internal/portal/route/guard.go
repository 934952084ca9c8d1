// Package route decides which portal routes a visitor may see.
package route

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Capability is what a route demands of the session.
type Capability int

const (
	Public Capability = iota
	Authenticated
	// Staff requires the admin or MEO role.
	Staff
)

func (c Capability) String() string {
	switch c {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case Staff:
		return "staff"
	}
	return "unknown"
}

// DefaultFallback is where denied visitors are sent.
const DefaultFallback = "/"

// Session is the view of the session store the guard needs.
type Session interface {
	Ready() <-chan struct{}
	IsAuthenticated() bool
	IsStaff() bool
}

// Decision is the outcome of Resolve.
type Decision struct {
	Allow    bool
	Redirect string
}

// Guard resolves capabilities against a session.
type Guard struct {
	fallback string
}

// NewGuard returns a guard redirecting to fallback, or to "/" when empty.
func NewGuard(fallback string) *Guard {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Guard{fallback: fallback}
}

// Resolve waits for the session to finish bootstrapping and then allows
// the route or redirects to the fallback.
func (g *Guard) Resolve(ctx context.Context, s Session, capability Capability) (Decision, error) {
	select {
	case <-s.Ready():
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}

	if Permits(s, capability) {
		return Decision{Allow: true}, nil
	}
	return Decision{Redirect: g.fallback}, nil
}

// Permits reports whether a bootstrapped session satisfies capability.
func Permits(s Session, capability Capability) bool {
	switch capability {
	case Public:
		return true
	case Authenticated:
		return s.IsAuthenticated()
	case Staff:
		return s.IsAuthenticated() && s.IsStaff()
	}
	return false
}

// Middleware enforces capability before any later handler runs. sessionOf
// returns the session an earlier middleware attached to the request.
func (g *Guard) Middleware(capability Capability, sessionOf func(*gin.Context) Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessionOf(c)
		if s == nil {
			c.Redirect(http.StatusFound, g.fallback)
			c.Abort()
			return
		}

		decision, err := g.Resolve(c.Request.Context(), s, capability)
		if err != nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}
