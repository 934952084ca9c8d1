package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/konaseema/zpportal/internal/pkg/apperrors"
)

// QueryString returns the trimmed query parameter key.
func QueryString(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// QueryInt parses an optional integer query parameter. A missing parameter
// yields zero; a malformed one is a bad request.
func QueryInt(c *gin.Context, key string) (int, error) {
	raw := QueryString(c, key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewBadRequestError(key + " must be a whole number")
	}
	return n, nil
}
