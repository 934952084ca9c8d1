package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/dberrors"
	"github.com/konaseema/zpportal/internal/pkg/logger"
)

// AlumniRepository handles alumni profile database operations
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateAlumni inserts an alumni profile.
func (r *AlumniRepository) CreateAlumni(ctx context.Context, alumni *models.Alumni) error {
	sql, args, err := r.sb.Insert("alumni").
		Columns("id", "user_id", "school_id", "batch_year", "current_profession", "company", "achievements", "willing_to_mentor").
		Values(alumni.ID, alumni.UserID, alumni.SchoolID, alumni.BatchYear, alumni.CurrentProfession,
			alumni.Company, nonNil(alumni.Achievements), alumni.WillingToMentor).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create alumni query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&alumni.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("userID", alumni.UserID).Msg("Error executing create alumni query")
		return fmt.Errorf("error creating alumni profile: %w", err)
	}
	return nil
}

// ListAlumni lists alumni profiles, newest batch first.
func (r *AlumniRepository) ListAlumni(ctx context.Context, filter models.AlumniFilter) ([]*models.Alumni, error) {
	query := r.sb.Select("id", "user_id", "school_id", "batch_year", "current_profession", "company",
		"achievements", "willing_to_mentor", "created_at").
		From("alumni").
		OrderBy("batch_year DESC", "created_at DESC").
		Limit(DefaultListLimit)
	if filter.SchoolID != "" {
		query = query.Where(squirrel.Eq{"school_id": filter.SchoolID})
	}
	if filter.BatchYear > 0 {
		query = query.Where(squirrel.Eq{"batch_year": filter.BatchYear})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list alumni query")
		return nil, fmt.Errorf("error querying alumni: %w", err)
	}
	defer rows.Close()

	list := []*models.Alumni{}
	for rows.Next() {
		a := &models.Alumni{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.SchoolID, &a.BatchYear, &a.CurrentProfession, &a.Company,
			&a.Achievements, &a.WillingToMentor, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning alumni row: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
