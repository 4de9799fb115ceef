package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/bookingservices/booking-api/internal/domain/booking"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type TransitionStatus struct {
	repo domain.Repository
}

func NewTransitionStatus(repo domain.Repository) *TransitionStatus {
	return &TransitionStatus{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *TransitionStatus) Execute(
	ctx context.Context,
	bookingID uint,
	target domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("Booking", bookingID)
		}
		return nil, err
	}

	if err := domain.CanTransition(domain.Status(b.Status), target); err != nil {
		return nil, err
	}

	b.Status = string(target)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
