package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/konaseema/zpportal/internal/app/models"
	appRepos "github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/auth"
)

type memorySchools struct {
	appRepos.ISchoolRepository
	mandals map[string]*appModels.Mandal
	schools map[string]*appModels.School
}

func newMemorySchools() *memorySchools {
	return &memorySchools{mandals: map[string]*appModels.Mandal{}, schools: map[string]*appModels.School{}}
}

func (m *memorySchools) CreateMandal(_ context.Context, mandal *appModels.Mandal) error {
	if _, ok := m.mandals[mandal.ID]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	m.mandals[mandal.ID] = mandal
	return nil
}

func (m *memorySchools) CreateSchool(_ context.Context, school *appModels.School) error {
	if _, ok := m.mandals[school.MandalID]; !ok {
		return apperrors.ErrMandalNotFound
	}
	if _, ok := m.schools[school.ID]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	m.schools[school.ID] = school
	return nil
}

type memoryUsers struct {
	appRepos.IUserRepository
	users []*appModels.User
}

func (m *memoryUsers) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryUsers) CreateUser(_ context.Context, user *appModels.User) error {
	m.users = append(m.users, user)
	return nil
}

func TestRunIsIdempotent(t *testing.T) {
	schools := newMemorySchools()
	users := &memoryUsers{}
	opts := Options{AdminEmail: " Admin@ZP.example ", AdminPassword: "district-secret"}

	require.NoError(t, Run(context.Background(), schools, users, opts, zerolog.Nop()))
	require.NoError(t, Run(context.Background(), schools, users, opts, zerolog.Nop()))

	assert.Len(t, schools.mandals, 5)
	assert.Len(t, schools.schools, 5)
	require.Len(t, users.users, 1)

	admin := users.users[0]
	assert.Equal(t, "admin@zp.example", admin.Email)
	assert.Equal(t, appModels.RoleAdmin, admin.Role)
	assert.True(t, admin.Approved)
	assert.True(t, auth.CheckPassword(admin.Password, "district-secret"))
}

func TestRunSkipsAdminWithoutPassword(t *testing.T) {
	users := &memoryUsers{}
	require.NoError(t, Run(context.Background(), newMemorySchools(), users, Options{AdminEmail: "admin@zp.example"}, zerolog.Nop()))
	assert.Empty(t, users.users)
}

func TestSampleSchoolsReferenceSampleMandals(t *testing.T) {
	mandals := map[string]bool{}
	for _, m := range SampleMandals() {
		assert.Equal(t, "Konaseema", m.District)
		mandals[m.ID] = true
	}
	for _, s := range SampleSchools() {
		assert.True(t, mandals[s.MandalID], s.ID)
		assert.NotEmpty(t, s.Facilities)
	}
}
