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

// SchoolNeedRepository handles school need database operations
type SchoolNeedRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolNeedRepository creates a new SchoolNeedRepository
func NewSchoolNeedRepository(db *pgxpool.Pool) *SchoolNeedRepository {
	return &SchoolNeedRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateSchoolNeed inserts a school need.
func (r *SchoolNeedRepository) CreateSchoolNeed(ctx context.Context, n *models.SchoolNeed) error {
	sql, args, err := r.sb.Insert("school_needs").
		Columns("id", "school_id", "title", "description", "category", "target_amount", "raised_amount", "status").
		Values(n.ID, n.SchoolID, n.Title, n.Description, n.Category, n.TargetAmount, n.RaisedAmount, n.Status).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create school need query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("schoolID", n.SchoolID).Msg("Error executing create school need query")
		return fmt.Errorf("error creating school need: %w", err)
	}
	return nil
}

// ListSchoolNeeds lists needs, newest first, optionally by school and status.
func (r *SchoolNeedRepository) ListSchoolNeeds(ctx context.Context, schoolID string, status models.NeedStatus) ([]*models.SchoolNeed, error) {
	query := r.sb.Select("id", "school_id", "title", "description", "category", "target_amount",
		"raised_amount", "status", "created_at").
		From("school_needs").
		OrderBy("created_at DESC").
		Limit(DefaultListLimit)
	if schoolID != "" {
		query = query.Where(squirrel.Eq{"school_id": schoolID})
	}
	if status != "" {
		query = query.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list school needs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list school needs query")
		return nil, fmt.Errorf("error querying school needs: %w", err)
	}
	defer rows.Close()

	needs := []*models.SchoolNeed{}
	for rows.Next() {
		n := &models.SchoolNeed{}
		if err := rows.Scan(&n.ID, &n.SchoolID, &n.Title, &n.Description, &n.Category, &n.TargetAmount,
			&n.RaisedAmount, &n.Status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning school need row: %w", err)
		}
		needs = append(needs, n)
	}
	return needs, rows.Err()
}
