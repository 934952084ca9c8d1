package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/dberrors"
	"github.com/konaseema/zpportal/internal/pkg/logger"
)

var eventColumns = []string{"id", "title", "description", "school_id", "event_date", "location", "rsvp_count", "created_by", "created_at"}

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanEvent(row scanner) (*models.Event, error) {
	e := &models.Event{}
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.SchoolID, &e.EventDate, &e.Location,
		&e.RSVPCount, &e.CreatedBy, &e.CreatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateEvent inserts an event.
func (r *EventRepository) CreateEvent(ctx context.Context, e *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("id", "title", "description", "school_id", "event_date", "location", "created_by").
		Values(e.ID, e.Title, e.Description, e.SchoolID, e.EventDate, e.Location, e.CreatedBy).
		Suffix("RETURNING rsvp_count, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.RSVPCount, &e.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Str("title", e.Title).Msg("Error executing create event query")
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// ListEvents lists events by event date, latest first.
func (r *EventRepository) ListEvents(ctx context.Context, schoolID string) ([]*models.Event, error) {
	query := r.sb.Select(eventColumns...).From("events").OrderBy("event_date DESC").Limit(DefaultListLimit)
	if schoolID != "" {
		query = query.Where(squirrel.Eq{"school_id": schoolID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// IncrementRSVP atomically bumps the RSVP count and returns the event.
func (r *EventRepository) IncrementRSVP(ctx context.Context, id string) (*models.Event, error) {
	sql, args, err := r.sb.Update("events").
		Set("rsvp_count", squirrel.Expr("rsvp_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(eventColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build rsvp query: %w", err)
	}

	e, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Str("eventID", id).Msg("Error executing rsvp query")
		return nil, fmt.Errorf("error recording rsvp: %w", err)
	}
	return e, nil
}
