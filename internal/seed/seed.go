package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appModels "github.com/konaseema/zpportal/internal/app/models"
	appRepos "github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/auth"
)

const defaultDistrict = "Konaseema"

// Options controls the optional bootstrap administrator.
type Options struct {
	AdminEmail    string
	AdminPassword string
}

// SampleMandals returns the mandals the sample schools belong to.
func SampleMandals() []*appModels.Mandal {
	names := []string{"Amalapuram", "Razole", "Mummidivaram", "Ravulapalem", "Sakhinetipalli"}
	mandals := make([]*appModels.Mandal, 0, len(names))
	for _, name := range names {
		mandals = append(mandals, &appModels.Mandal{
			ID:       "mandal-" + strings.ToLower(name),
			Name:     name,
			District: defaultDistrict,
			MEOCount: 2,
		})
	}
	return mandals
}

func strPtr(s string) *string { return &s }

// SampleSchools returns the five sample schools of the district.
func SampleSchools() []*appModels.School {
	return []*appModels.School{
		{
			ID:           "school-001",
			Name:         "ZPHS Amalapuram",
			MandalID:     "mandal-amalapuram",
			HMNote:       strPtr("Welcome to ZPHS Amalapuram! We strive for excellence in education and holistic development of our students."),
			Facilities:   []string{"Library", "Computer Lab", "Science Lab", "Playground", "Sports Equipment"},
			ContactEmail: strPtr("zphs.amalapuram@ap.gov.in"),
			ContactPhone: strPtr("08856-222333"),
			Address:      strPtr("Main Road, Amalapuram, Konaseema District"),
		},
		{
			ID:           "school-002",
			Name:         "ZPHS Razole",
			MandalID:     "mandal-razole",
			HMNote:       strPtr("ZPHS Razole is committed to providing quality education to rural students."),
			Facilities:   []string{"Library", "Smart Classroom", "Sports Ground", "Laboratory"},
			ContactEmail: strPtr("zphs.razole@ap.gov.in"),
			ContactPhone: strPtr("08852-245678"),
			Address:      strPtr("Gandhi Road, Razole, Konaseema District"),
		},
		{
			ID:           "school-003",
			Name:         "ZPHS Mummidivaram",
			MandalID:     "mandal-mummidivaram",
			HMNote:       strPtr("Empowering students through education and innovation."),
			Facilities:   []string{"Computer Lab", "Library", "Playground", "Drinking Water"},
			ContactEmail: strPtr("zphs.mummidivaram@ap.gov.in"),
			ContactPhone: strPtr("08853-234567"),
			Address:      strPtr("School Street, Mummidivaram, Konaseema District"),
		},
		{
			ID:           "school-004",
			Name:         "ZPHS Ravulapalem",
			MandalID:     "mandal-ravulapalem",
			HMNote:       strPtr("Building futures through quality education."),
			Facilities:   []string{"Science Lab", "Library", "Sports Equipment", "Clean Toilets"},
			ContactEmail: strPtr("zphs.ravulapalem@ap.gov.in"),
			ContactPhone: strPtr("08854-223344"),
			Address:      strPtr("Market Road, Ravulapalem, Konaseema District"),
		},
		{
			ID:           "school-005",
			Name:         "ZPHS Sakhinetipalli",
			MandalID:     "mandal-sakhinetipalli",
			HMNote:       strPtr("Dedicated to excellence in education and character building."),
			Facilities:   []string{"Library", "Computer Lab", "Playground", "Mid-day Meal"},
			ContactEmail: strPtr("zphs.sakhinetipalli@ap.gov.in"),
			ContactPhone: strPtr("08855-234567"),
			Address:      strPtr("NH-16, Sakhinetipalli, Konaseema District"),
		},
	}
}

// Run creates the sample mandals and schools, and the administrator when a
// password is configured. Rows that already exist are left untouched, so Run
// is safe on every start. Errors are collected rather than stopping early.
func Run(ctx context.Context, schoolRepo appRepos.ISchoolRepository, userRepo appRepos.IUserRepository, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Mandals/Schools)...")
	var finalErr error

	for _, mandal := range SampleMandals() {
		err := schoolRepo.CreateMandal(ctx, mandal)
		if err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("mandalID", mandal.ID).Msg("Error creating mandal")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, school := range SampleSchools() {
		err := schoolRepo.CreateSchool(ctx, school)
		if err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("schoolID", school.ID).Msg("Error creating school")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createAdmin(ctx, userRepo, opts, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data is in place")
	}
	return finalErr
}

func createAdmin(ctx context.Context, userRepo appRepos.IUserRepository, opts Options, lgr zerolog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	if email == "" || opts.AdminPassword == "" {
		lgr.Debug().Msg("No admin credentials configured, skipping admin seed")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		return nil
	}

	lgr.Info().Str("email", email).Msg("Creating default admin user...")
	hashedPassword, err := auth.HashPassword(opts.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashedPassword,
		Name:     "District Administrator",
		Role:     appModels.RoleAdmin,
		Approved: true,
	}
	if err := userRepo.CreateUser(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}
	return nil
}
