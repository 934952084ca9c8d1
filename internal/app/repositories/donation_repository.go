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

// DonationRepository handles donation database operations. Donations are
// never updated or deleted.
type DonationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateDonation inserts a donation.
func (r *DonationRepository) CreateDonation(ctx context.Context, d *models.Donation) error {
	sql, args, err := r.sb.Insert("donations").
		Columns("id", "donor_name", "donor_email", "amount", "school_id", "purpose", "payment_status", "transaction_id").
		Values(d.ID, d.DonorName, d.DonorEmail, d.Amount, d.SchoolID, d.Purpose, d.PaymentStatus, d.TransactionID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create donation query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&d.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("donorEmail", d.DonorEmail).Msg("Error executing create donation query")
		return fmt.Errorf("error creating donation: %w", err)
	}
	return nil
}

// ListDonations lists the latest donations, optionally for one school.
func (r *DonationRepository) ListDonations(ctx context.Context, schoolID string) ([]*models.Donation, error) {
	query := r.sb.Select("id", "donor_name", "donor_email", "amount", "school_id", "purpose",
		"payment_status", "transaction_id", "created_at").
		From("donations").
		OrderBy("created_at DESC").
		Limit(DefaultListLimit)
	if schoolID != "" {
		query = query.Where(squirrel.Eq{"school_id": schoolID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list donations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list donations query")
		return nil, fmt.Errorf("error querying donations: %w", err)
	}
	defer rows.Close()

	donations := []*models.Donation{}
	for rows.Next() {
		d := &models.Donation{}
		if err := rows.Scan(&d.ID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.SchoolID, &d.Purpose,
			&d.PaymentStatus, &d.TransactionID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning donation row: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
