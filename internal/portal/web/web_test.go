package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/portal/apiclient"
)

// backend fakes the API. Tokens map to users; every request is recorded.
// Calls listed in fail answer 500.
type backend struct {
	mu       sync.Mutex
	users    map[string]*models.User
	hits     []string
	fail     map[string]bool
	donation *models.Donation
}

func newBackend() *backend {
	return &backend{
		users: map[string]*models.User{
			"student-token": {ID: "u-1", Name: "Ravi", Email: "ravi@example.com", Role: models.RoleStudent, Approved: true},
			"admin-token":   {ID: "u-2", Name: "District Administrator", Email: "admin@example.com", Role: models.RoleAdmin, Approved: true},
		},
		fail: make(map[string]bool),
	}
}

func (b *backend) failing(calls ...string) *backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, call := range calls {
		b.fail[call] = true
	}
	return b
}

func (b *backend) calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.hits...)
}

func (b *backend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hits = append(b.hits, r.Method+" "+r.URL.Path)
}

func (b *backend) hit(call string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, h := range b.hits {
		if h == call {
			return true
		}
	}
	return false
}

func (b *backend) hitPrefix(prefix string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, h := range b.hits {
		if strings.HasPrefix(h, prefix) {
			return true
		}
	}
	return false
}

func reply(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.record(r)

	b.mu.Lock()
	broken := b.fail[r.Method+" "+r.URL.Path]
	b.mu.Unlock()
	if broken {
		reply(w, http.StatusInternalServerError, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		user, ok := b.users[token]
		if !ok {
			reply(w, http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
			return
		}
		reply(w, http.StatusOK, dto.NewSuccessResponse(user))
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "ravi@example.com" || req.Password != "secret1" {
			reply(w, http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid email or password")))
			return
		}
		reply(w, http.StatusOK, dto.NewSuccessResponse(dto.LoginResponse{
			AccessToken: "student-token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			User:        b.users["student-token"],
		}))
	})
	mux.HandleFunc("GET /api/schools", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse([]*models.School{
			{ID: "school-001", Name: "ZPHS Amalapuram", MandalID: "mandal-amalapuram"},
			{ID: "school-002", Name: "ZPHS Razole", MandalID: "mandal-razole"},
		}))
	})
	mux.HandleFunc("GET /api/schools/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "school-001" {
			reply(w, http.StatusNotFound, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "School not found")))
			return
		}
		reply(w, http.StatusOK, dto.NewSuccessResponse(&models.School{ID: "school-001", Name: "ZPHS Amalapuram", MandalID: "mandal-amalapuram"}))
	})
	mux.HandleFunc("GET /api/alumni", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse([]*models.Alumni{}))
	})
	mux.HandleFunc("GET /api/news", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse([]*models.News{}))
	})
	mux.HandleFunc("GET /api/galleries", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse([]*models.Gallery{}))
	})
	mux.HandleFunc("GET /api/school-needs", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse([]*models.SchoolNeed{}))
	})
	mux.HandleFunc("GET /api/donations", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse([]*models.Donation{}))
	})
	mux.HandleFunc("POST /api/donations", func(w http.ResponseWriter, r *http.Request) {
		var req dto.DonationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		d := &models.Donation{ID: "don-1", DonorName: req.DonorName, DonorEmail: req.DonorEmail, Amount: req.Amount, PaymentStatus: models.PaymentCompleted}
		b.mu.Lock()
		b.donation = d
		b.mu.Unlock()
		reply(w, http.StatusCreated, dto.NewSuccessResponse(d))
	})
	mux.HandleFunc("GET /api/admin/stats", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse(dto.AdminStats{TotalSchools: 2}))
	})
	mux.HandleFunc("GET /api/admin/users", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, dto.NewSuccessResponse([]*models.User{}))
	})
	mux.ServeHTTP(w, r)
}

func newPortal(t *testing.T, b *backend) *gin.Engine {
	t.Helper()
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	api := apiclient.New(srv.URL+"/api", srv.Client(), zerolog.Nop())
	h, err := New(api, Config{RequestTimeout: 2 * time.Second}, zerolog.Nop())
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.Register(router)
	return router
}

func get(router http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func post(router http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestProtectedPageRedirectsAnonymousVisitor(t *testing.T) {
	router := newPortal(t, newBackend())

	w := get(router, "/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestStudentCannotReachAdmin(t *testing.T) {
	b := newBackend()
	router := newPortal(t, b)

	w := get(router, "/admin", &http.Cookie{Name: TokenCookie, Value: "student-token"})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.False(t, b.hitPrefix("GET /api/admin"))
}

func TestAdminSeesDashboard(t *testing.T) {
	b := newBackend()
	router := newPortal(t, b)

	w := get(router, "/admin", &http.Cookie{Name: TokenCookie, Value: "admin-token"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Dashboard")
	assert.True(t, b.hit("GET /api/admin/stats"))
	assert.True(t, b.hit("GET /api/admin/users"))
}

func TestSchoolSearchWithoutMatches(t *testing.T) {
	router := newPortal(t, newBackend())

	w := get(router, "/schools?q=nonexistent")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No schools found")
	assert.NotContains(t, w.Body.String(), "ZPHS Amalapuram")

	w = get(router, "/schools?q=razole")
	assert.Contains(t, w.Body.String(), "ZPHS Razole")
	assert.NotContains(t, w.Body.String(), "ZPHS Amalapuram")
}

func TestDonationOfZeroIsRejectedLocally(t *testing.T) {
	b := newBackend()
	router := newPortal(t, b)

	w := post(router, "/donations", url.Values{
		"donor_name":  {"Lakshmi"},
		"donor_email": {"lakshmi@example.com"},
		"amount":      {"0"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `value="Lakshmi"`)
	assert.False(t, b.hit("POST /api/donations"))
}

func TestInvalidDonationNeverReachesBackend(t *testing.T) {
	b := newBackend()
	router := newPortal(t, b)

	w := post(router, "/donations", url.Values{
		"donor_name":  {"Lakshmi"},
		"donor_email": {"lakshmi@example.com"},
		"amount":      {"-5"},
		"school_id":   {"school-002"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, b.calls())

	body := w.Body.String()
	assert.Contains(t, body, `value="Lakshmi"`)
	assert.Contains(t, body, `value="-5"`)
	assert.Contains(t, body, `<option value="school-002" selected>`)
	assert.Contains(t, body, "amount must be a number greater than zero")
	assert.NotContains(t, body, "No donations yet")
}

func TestDonationSucceedsWhenSchoolListFails(t *testing.T) {
	b := newBackend().failing("GET /api/schools")
	router := newPortal(t, b)

	w := post(router, "/donations", url.Values{
		"donor_name":  {"Lakshmi"},
		"donor_email": {"lakshmi@example.com"},
		"amount":      {"500"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/donations", w.Header().Get("Location"))
	require.NotNil(t, b.donation)
	assert.Equal(t, 500.0, b.donation.Amount)
}

func TestDonationKeepsFormWhenHistoryFails(t *testing.T) {
	b := newBackend().failing("GET /api/donations")
	router := newPortal(t, b)

	w := post(router, "/donations", url.Values{
		"donor_name":  {"Lakshmi"},
		"donor_email": {"lakshmi@example.com"},
		"amount":      {"500"},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, b.hit("POST /api/donations"))
	assert.Contains(t, w.Body.String(), `value="Lakshmi"`)
	assert.Contains(t, w.Body.String(), `value="500"`)
	assert.Contains(t, w.Body.String(), `href="/donations"`)
}

func TestFailedSliceShowsErrorInsteadOfEmptyState(t *testing.T) {
	b := newBackend().failing("GET /api/donations")
	router := newPortal(t, b)

	w := get(router, "/donations")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "No donations yet")
	assert.Contains(t, body, "Could not load donations")
	// The sibling slice still fills the school picker.
	assert.Contains(t, body, "ZPHS Razole")
}

func TestSchoolPageKeepsLoadedSections(t *testing.T) {
	b := newBackend().failing("GET /api/news")
	router := newPortal(t, b)

	w := get(router, "/schools/school-001")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h1>ZPHS Amalapuram</h1>")
	assert.Contains(t, body, "Could not load news")
	assert.NotContains(t, body, "No news yet.")
	assert.Contains(t, body, `href="/schools/school-001"`)
	// Sections that loaded keep their own empty state.
	assert.Contains(t, body, "No photos yet.")
	assert.Contains(t, body, "No open needs.")
}

func TestUnknownSchoolIsNotFound(t *testing.T) {
	router := newPortal(t, newBackend())

	w := get(router, "/schools/school-999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "School not found")
	assert.NotContains(t, w.Body.String(), "Could not load this school")
}

func TestDonationRedirectsWithThanks(t *testing.T) {
	b := newBackend()
	router := newPortal(t, b)

	w := post(router, "/donations", url.Values{
		"donor_name":  {"Lakshmi"},
		"donor_email": {"lakshmi@example.com"},
		"amount":      {"₹2,500"},
		"school_id":   {"school-002"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/donations", w.Header().Get("Location"))

	require.NotNil(t, b.donation)
	assert.Equal(t, 2500.0, b.donation.Amount)

	flash := responseCookie(w, FlashCookie)
	require.NotNil(t, flash)
	assert.Contains(t, flash.Value, "success")
}

func TestLoginSetsTokenCookie(t *testing.T) {
	router := newPortal(t, newBackend())

	w := post(router, "/login", url.Values{"email": {"ravi@example.com"}, "password": {"secret1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	token := responseCookie(w, TokenCookie)
	require.NotNil(t, token)
	assert.Equal(t, "student-token", token.Value)
	assert.True(t, token.HttpOnly)
}

func TestLoginFailureKeepsEmail(t *testing.T) {
	router := newPortal(t, newBackend())

	w := post(router, "/login", url.Values{"email": {"ravi@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.Contains(t, w.Body.String(), `value="ravi@example.com"`)
}

func TestStaleTokenIsCleared(t *testing.T) {
	router := newPortal(t, newBackend())

	w := get(router, "/schools", &http.Cookie{Name: TokenCookie, Value: "expired"})
	assert.Equal(t, http.StatusOK, w.Code)

	token := responseCookie(w, TokenCookie)
	require.NotNil(t, token)
	assert.Empty(t, token.Value)
	assert.Less(t, token.MaxAge, 0)
}

func TestThemeToggle(t *testing.T) {
	router := newPortal(t, newBackend())

	w := post(router, "/theme", url.Values{"next": {"/schools"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/schools", w.Header().Get("Location"))
	theme := responseCookie(w, ThemeCookie)
	require.NotNil(t, theme)
	assert.Equal(t, "dark", theme.Value)

	w = post(router, "/theme", url.Values{"next": {"//evil.example"}}, &http.Cookie{Name: ThemeCookie, Value: "dark"})
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "light", responseCookie(w, ThemeCookie).Value)
}

func TestPlaceholderPages(t *testing.T) {
	router := newPortal(t, newBackend())

	w := get(router, "/forum")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "under development")
}

func TestProtectRejectsFormWithoutToken(t *testing.T) {
	router := newPortal(t, newBackend())
	protected, err := Protect(router, Config{CSRFKey: []byte(strings.Repeat("k", 32))})
	require.NoError(t, err)

	w := post(protected, "/theme", url.Values{"next": {"/"}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, err = Protect(router, Config{CSRFKey: []byte("short")})
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹0", formatMoney(0))
	assert.Equal(t, "₹2,500", formatMoney(2500))
	assert.Equal(t, "₹1,234,567", formatMoney(1234567))
	assert.Equal(t, "₹1,000.50", formatMoney(1000.5))
}
