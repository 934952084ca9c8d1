package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/middleware"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
)

// callerID returns the authenticated user id or answers 401.
func callerID(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return "", false
	}
	return userID, true
}
