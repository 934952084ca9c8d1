package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
}

func newAuthRouter(jwtService *auth.JWTService) *gin.Engine {
	m := NewAuthMiddleware(jwtService)
	r := gin.New()
	r.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.String(http.StatusOK, id)
	})
	r.GET("/admin", m.JWTAuth(), m.RolesRequired(models.RoleAdmin, models.RoleMEO), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestJWTAuth(t *testing.T) {
	jwtService := testJWT()
	r := newAuthRouter(jwtService)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeError(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, decodeError(t, rec).Error.Code)

	token, _, err := jwtService.GenerateAccessToken(&models.User{ID: "u-42", Email: "ravi@example.com", Role: models.RoleStudent})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-42", rec.Body.String())
}

func TestRolesRequired(t *testing.T) {
	jwtService := testJWT()
	r := newAuthRouter(jwtService)

	for role, want := range map[models.RoleType]int{
		models.RoleStudent: http.StatusForbidden,
		models.RoleAlumni:  http.StatusForbidden,
		models.RoleAdmin:   http.StatusOK,
		models.RoleMEO:     http.StatusOK,
	} {
		token, _, err := jwtService.GenerateAccessToken(&models.User{ID: "u-1", Role: role})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, string(role))
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "name cannot be empty"},
		{fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrSchoolNotFound), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "school not found"},
		{apperrors.NewBadRequestError("batch_year must be a whole number"), http.StatusBadRequest, dto.ErrorCodeBadRequest, "batch_year must be a whole number"},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password"},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
		{apperrors.NewForbiddenError("alumni account is awaiting approval"), http.StatusForbidden, dto.ErrorCodeForbidden, "alumni account is awaiting approval"},
		{apperrors.ErrSchoolNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "School not found"},
		{fmt.Errorf("error loading: %w", apperrors.ErrUserNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already registered"},
		{errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}

func TestBindErrorsUseJSONFieldNames(t *testing.T) {
	RegisterValidation()
	r := gin.New()
	r.POST("/donations", func(c *gin.Context) {
		var req dto.DonationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/donations", jsonBody(`{"donor_name":"L","donor_email":"l@example.com","amount":-5}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "amount", resp.Error.Field)
	assert.Equal(t, "amount must be greater than 0", resp.Error.Message)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/api/schools", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/schools", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/schools", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("api")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/schools/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/schools/school-001", nil))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `zpportal_http_requests_total{method="GET",route="/api/schools/:id",service="api",status="200"} 1`)
}
