package booking

import (
	"context"
	"time"

	"github.com/bookingservices/booking-api/internal/models"
)

// ListFilter são os filtros opcionais de GET /bookings/.
// Filtros são combinados com AND; zero significa "sem filtro".
type ListFilter struct {
	UserID    uint
	ServiceID uint
	Status    string
	Skip      int
	Limit     int
}

type Repository interface {
	// -------- Referential lookups --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// AssertNoTimeConflict falha com ErrBusiness("time_conflict") se o
	// usuário já tem reserva pending/confirmed cruzando [start, end).
	// excludeID ignora a própria reserva em atualizações.
	AssertNoTimeConflict(
		ctx context.Context,
		userID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- Booking (read / mutate) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error
}
