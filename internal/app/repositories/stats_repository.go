package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/pkg/logger"
)

// StatsRepository computes dashboard aggregates in one round trip.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

const adminStatsSQL = `
SELECT
	(SELECT COUNT(*) FROM schools),
	(SELECT COUNT(*) FROM users),
	(SELECT COUNT(*) FROM alumni),
	(SELECT COUNT(*) FROM donations),
	(SELECT COALESCE(SUM(amount), 0)::float8 FROM donations WHERE payment_status = $1),
	(SELECT COUNT(*) FROM users WHERE role = $2 AND approved = FALSE)`

// AdminStats returns the totals shown on the admin dashboard. Only completed
// donations count towards the amount.
func (r *StatsRepository) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}
	err := r.db.QueryRow(ctx, adminStatsSQL, models.PaymentCompleted, models.RoleAlumni).Scan(
		&stats.TotalSchools,
		&stats.TotalUsers,
		&stats.TotalAlumni,
		&stats.TotalDonations,
		&stats.TotalDonationAmount,
		&stats.PendingApprovals,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing admin stats")
		return nil, fmt.Errorf("error computing admin stats: %w", err)
	}
	return stats, nil
}
