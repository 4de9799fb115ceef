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

type CreateBookingInput struct {
	UserID    uint
	ServiceID uint

	BookingDate time.Time
	StartTime   time.Time
	EndTime     time.Time

	Notes      string
	TotalPrice float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// 1. Usuário precisa existir
	if _, err := uc.repo.GetUser(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("User", in.UserID)
		}
		return nil, err
	}

	// 2. Serviço precisa existir e estar disponível
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("Service", in.ServiceID)
		}
		return nil, err
	}
	if !svc.IsAvailable {
		return nil, httperr.ErrBusinessf(
			"service_unavailable",
			"Service with ID %d is not available", in.ServiceID,
		)
	}

	// 3. Janela de horário válida
	if !in.EndTime.After(in.StartTime) {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	// 4. Conflito de horário + insert (transacional no repositório)
	b := &models.Booking{
		UserID:      in.UserID,
		ServiceID:   in.ServiceID,
		BookingDate: in.BookingDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		TotalPrice:  in.TotalPrice,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}
