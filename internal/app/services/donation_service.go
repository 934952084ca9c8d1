package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
	"github.com/konaseema/zpportal/internal/pkg/validation"
)

// DonationService records donations. Payments are not processed; every
// accepted donation is marked completed with a generated transaction id.
type DonationService interface {
	CreateDonation(ctx context.Context, req *dto.DonationRequest) (*models.Donation, error)
	ListDonations(ctx context.Context, schoolID string) ([]*models.Donation, error)
}

type donationServiceImpl struct {
	donationRepo repositories.IDonationRepository
	logger       zerolog.Logger
}

// NewDonationService creates a new DonationService
func NewDonationService(donationRepo repositories.IDonationRepository, logger zerolog.Logger) DonationService {
	return &donationServiceImpl{
		donationRepo: donationRepo,
		logger:       logger,
	}
}

// NewTransactionID returns "TXN" followed by 12 upper case hex digits.
func NewTransactionID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TXN" + strings.ToUpper(hex[:12])
}

// ValidateAmount rejects zero, negative and non-finite amounts.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrInvalidAmount)
	}
	return nil
}

// CreateDonation validates and stores a donation.
func (s *donationServiceImpl) CreateDonation(ctx context.Context, req *dto.DonationRequest) (*models.Donation, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: donation is nil", apperrors.ErrValidationFailed)
	}
	if err := ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	donorName, err := requireText("donor_name", req.DonorName)
	if err != nil {
		return nil, err
	}
	if !validation.IsEmail(req.DonorEmail) {
		return nil, fmt.Errorf("%w: invalid donor email", apperrors.ErrValidationFailed)
	}

	txn := NewTransactionID()
	donation := &models.Donation{
		ID:            newID(),
		DonorName:     donorName,
		DonorEmail:    normalizeEmail(req.DonorEmail),
		Amount:        req.Amount,
		SchoolID:      optionalText(req.SchoolID),
		Purpose:       optionalText(req.Purpose),
		PaymentStatus: models.PaymentCompleted,
		TransactionID: &txn,
	}

	if err := s.donationRepo.CreateDonation(ctx, donation); err != nil {
		if errors.Is(err, apperrors.ErrSchoolNotFound) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("error creating donation: %w", err)
	}

	s.logger.Info().
		Str("donationID", donation.ID).
		Str("transactionID", txn).
		Float64("amount", donation.Amount).
		Msg("Donation recorded")
	return donation, nil
}

// ListDonations lists donations, newest first.
func (s *donationServiceImpl) ListDonations(ctx context.Context, schoolID string) ([]*models.Donation, error) {
	donations, err := s.donationRepo.ListDonations(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving donations: %w", err)
	}
	return donations, nil
}
