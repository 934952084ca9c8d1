package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
)

// EventService handles events and RSVPs.
type EventService interface {
	CreateEvent(ctx context.Context, userID string, req *dto.EventRequest) (*models.Event, error)
	ListEvents(ctx context.Context, schoolID string) ([]*models.Event, error)
	RSVP(ctx context.Context, eventID string) (*models.Event, error)
}

type eventServiceImpl struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.IEventRepository) EventService {
	return &eventServiceImpl{eventRepo: eventRepo}
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, userID string, req *dto.EventRequest) (*models.Event, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: event is nil", apperrors.ErrValidationFailed)
	}
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	description, err := requireText("description", req.Description)
	if err != nil {
		return nil, err
	}
	if req.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", apperrors.ErrValidationFailed)
	}

	event := &models.Event{
		ID:          newID(),
		Title:       title,
		Description: description,
		SchoolID:    optionalText(req.SchoolID),
		EventDate:   req.EventDate.UTC(),
		Location:    optionalText(req.Location),
		CreatedBy:   userID,
	}

	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return event, nil
}

func (s *eventServiceImpl) ListEvents(ctx context.Context, schoolID string) ([]*models.Event, error) {
	events, err := s.eventRepo.ListEvents(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	return events, nil
}

// RSVP increments the attendance count of an event.
func (s *eventServiceImpl) RSVP(ctx context.Context, eventID string) (*models.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}
	event, err := s.eventRepo.IncrementRSVP(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error recording RSVP: %w", err)
	}
	return event, nil
}
