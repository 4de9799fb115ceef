package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/bookingservices/booking-api/internal/domain/booking"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil ficam como estão (substituição parcial).
type RescheduleBookingInput struct {
	BookingID uint

	BookingDate *time.Time
	StartTime   *time.Time
	EndTime     *time.Time

	Notes      *string
	TotalPrice *float64
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleBooking struct {
	repo domain.Repository
}

func NewRescheduleBooking(repo domain.Repository) *RescheduleBooking {
	return &RescheduleBooking{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("Booking", in.BookingID)
		}
		return nil, err
	}

	windowChanged := false

	if in.BookingDate != nil {
		b.BookingDate = *in.BookingDate
	}
	if in.StartTime != nil {
		b.StartTime = *in.StartTime
		windowChanged = true
	}
	if in.EndTime != nil {
		b.EndTime = *in.EndTime
		windowChanged = true
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}
	if in.TotalPrice != nil {
		b.TotalPrice = *in.TotalPrice
	}

	if windowChanged {
		if !b.EndTime.After(b.StartTime) {
			return nil, httperr.ErrBusiness("invalid_range")
		}

		// Reserva sendo movida: re-checa sobreposição ignorando a si mesma.
		if err := uc.repo.AssertNoTimeConflict(
			ctx,
			b.UserID,
			b.StartTime,
			b.EndTime,
			b.ID,
		); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
