package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konaseema/zpportal/internal/app/controllers"
	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/app/services"
	"github.com/konaseema/zpportal/internal/middleware"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/auth"
)

type stubSchoolService struct {
	services.SchoolService
	lastFilter repositories.SchoolFilter
}

func (s *stubSchoolService) ListSchools(_ context.Context, f repositories.SchoolFilter) ([]*models.School, error) {
	s.lastFilter = f
	return []*models.School{{ID: "school-002", Name: "ZPHS Razole", MandalID: "mandal-razole", Facilities: []string{}}}, nil
}

func (s *stubSchoolService) GetSchool(_ context.Context, id string) (*models.School, error) {
	return nil, apperrors.ErrSchoolNotFound
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *stubSchoolService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "t"})
	schools := &stubSchoolService{}

	router := gin.New()
	SetupRouter(router, Controllers{
		Auth:        controllers.NewAuthController(nil, zerolog.Nop()),
		School:      controllers.NewSchoolController(schools),
		Alumni:      controllers.NewAlumniController(nil),
		Donation:    controllers.NewDonationController(nil),
		Event:       controllers.NewEventController(nil),
		Content:     controllers.NewContentController(nil),
		SchoolNeed:  controllers.NewSchoolNeedController(nil),
		Admin:       controllers.NewAdminController(nil),
		Placeholder: controllers.NewPlaceholderController(),
	}, middleware.NewAuthMiddleware(jwtService))
	return router, jwtService, schools
}

func bearer(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	token, _, err := jwtService.GenerateAccessToken(&models.User{ID: "u-1", Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPublicSchoolListing(t *testing.T) {
	router, _, schools := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schools?search=raz&mandal_id=mandal-razole", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, repositories.SchoolFilter{MandalID: "mandal-razole", Search: "raz"}, schools.lastFilter)

	var resp struct {
		Success bool             `json:"success"`
		Data    []*models.School `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "ZPHS Razole", resp.Data[0].Name)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schools/school-999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaffRoutesAreGuarded(t *testing.T) {
	router, jwtService, _ := newTestRouter(t)
	body := `{"name":"ZPHS Kothapeta","mandal_id":"mandal-amalapuram"}`

	req := httptest.NewRequest(http.MethodPost, "/api/schools", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, path := range []string{"/api/admin/stats", "/api/admin/users"} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", bearer(t, jwtService, models.RoleStudent))
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/admin/users/u-2/approve", nil)
	req.Header.Set("Authorization", bearer(t, jwtService, models.RoleAlumni))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPlaceholders(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/api/chat/conversations", "/api/mentors", "/api/notifications"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)

		var resp struct {
			Data dto.MessageResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Coming soon", resp.Data.Message)
	}
}
