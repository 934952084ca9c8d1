// Package services holds the business rules of the portal backend.
//
// Services defined in this package:
//   - AuthService: registration, login and the identity endpoint
//   - SchoolService: school directory and mandals
//   - AlumniService: alumni network profiles
//   - DonationService: donation records with mocked payment completion
//   - EventService: events and RSVPs
//   - ContentService: forum posts, bulletins, news and galleries
//   - SchoolNeedService: funding needs published by schools
//   - AdminService: dashboard statistics and alumni approval
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/konaseema/zpportal/internal/pkg/apperrors"
)

// newID returns the identifier used for every stored entity.
func newID() string {
	return uuid.NewString()
}

// requireText trims s and fails validation when nothing is left.
func requireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field)
	}
	return s, nil
}

// optionalText trims s and maps blank values to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
