package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/dberrors"
	"github.com/konaseema/zpportal/internal/pkg/logger"
)

var schoolColumns = []string{"id", "name", "mandal_id", "hm_note", "facilities", "contact_email", "contact_phone", "address", "created_at"}

// SchoolFilter narrows the school directory.
type SchoolFilter struct {
	MandalID string
	// Search is matched case-insensitively against the school name.
	Search string
}

// SchoolRepository handles school and mandal database operations
type SchoolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanSchool(row scanner) (*models.School, error) {
	school := &models.School{}
	err := row.Scan(&school.ID, &school.Name, &school.MandalID, &school.HMNote, &school.Facilities,
		&school.ContactEmail, &school.ContactPhone, &school.Address, &school.CreatedAt)
	if err != nil {
		return nil, err
	}
	return school, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// CreateSchool inserts a school.
func (r *SchoolRepository) CreateSchool(ctx context.Context, school *models.School) error {
	sql, args, err := r.sb.Insert("schools").
		Columns("id", "name", "mandal_id", "hm_note", "facilities", "contact_email", "contact_phone", "address").
		Values(school.ID, school.Name, school.MandalID, school.HMNote, nonNil(school.Facilities),
			school.ContactEmail, school.ContactPhone, school.Address).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create school SQL")
		return fmt.Errorf("failed to build create school query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&school.CreatedAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMandalNotFound
		}
		logger.Error().Err(err).Str("schoolID", school.ID).Msg("Error executing create school query")
		return fmt.Errorf("error creating school: %w", err)
	}
	return nil
}

// GetSchoolByID retrieves a school by ID
func (r *SchoolRepository) GetSchoolByID(ctx context.Context, id string) (*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns...).From("schools").Where(squirrel.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	school, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("schoolID", id).Msg("Error scanning school row")
		return nil, fmt.Errorf("error getting school by ID: %w", err)
	}
	return school, nil
}

// ListSchools lists schools ordered by name.
func (r *SchoolRepository) ListSchools(ctx context.Context, filter SchoolFilter) ([]*models.School, error) {
	query := r.sb.Select(schoolColumns...).From("schools").OrderBy("name ASC")
	if filter.MandalID != "" {
		query = query.Where(squirrel.Eq{"mandal_id": filter.MandalID})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + escapeLike(search) + "%"})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list schools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schools query")
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning school row: %w", err)
		}
		schools = append(schools, school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating school rows: %w", err)
	}
	return schools, nil
}

// UpdateSchool replaces the mutable fields of a school.
func (r *SchoolRepository) UpdateSchool(ctx context.Context, school *models.School) error {
	sql, args, err := r.sb.Update("schools").
		SetMap(map[string]interface{}{
			"name":          school.Name,
			"mandal_id":     school.MandalID,
			"hm_note":       school.HMNote,
			"facilities":    nonNil(school.Facilities),
			"contact_email": school.ContactEmail,
			"contact_phone": school.ContactPhone,
			"address":       school.Address,
		}).
		Where(squirrel.Eq{"id": school.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update school query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&school.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrSchoolNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrMandalNotFound
		}
		logger.Error().Err(err).Str("schoolID", school.ID).Msg("Error executing update school query")
		return fmt.Errorf("error updating school: %w", err)
	}
	return nil
}

// CreateMandal inserts a mandal.
func (r *SchoolRepository) CreateMandal(ctx context.Context, mandal *models.Mandal) error {
	sql, args, err := r.sb.Insert("mandals").
		Columns("id", "name", "district", "meo_count").
		Values(mandal.ID, mandal.Name, mandal.District, mandal.MEOCount).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create mandal query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("mandalID", mandal.ID).Msg("Error executing create mandal query")
		return fmt.Errorf("error creating mandal: %w", err)
	}
	return nil
}

// ListMandals lists mandals ordered by name.
func (r *SchoolRepository) ListMandals(ctx context.Context) ([]*models.Mandal, error) {
	sql, args, err := r.sb.Select("id", "name", "district", "meo_count").From("mandals").OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list mandals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list mandals query")
		return nil, fmt.Errorf("error querying mandals: %w", err)
	}
	defer rows.Close()

	mandals := []*models.Mandal{}
	for rows.Next() {
		m := &models.Mandal{}
		if err := rows.Scan(&m.ID, &m.Name, &m.District, &m.MEOCount); err != nil {
			return nil, fmt.Errorf("error scanning mandal row: %w", err)
		}
		mandals = append(mandals, m)
	}
	return mandals, rows.Err()
}
