package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/bookingservices/booking-api/internal/domain/booking"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Referential lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// conflictQuery monta o filtro de sobreposição: janelas [s1,e1) e [s2,e2)
// cruzam sse s1 < e2 e s2 < e1. Apenas pending/confirmed bloqueiam.
func (r *BookingGormRepository) conflictQuery(
	tx *gorm.DB,
	userID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) *gorm.DB {

	q := tx.
		Model(&models.Booking{}).
		Where(
			"user_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			userID,
			domain.ActiveStatuses(),
			end,
			start,
		)

	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}

	return q
}

// CreateBooking roda o check de conflito e o insert em uma única transação,
// com lock de linha no Postgres (SQLite não tem SELECT ... FOR UPDATE).
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := r.conflictQuery(tx, b.UserID, b.StartTime, b.EndTime, 0)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		if err := firstConflict(q); err != nil {
			return err
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	userID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	q := r.conflictQuery(r.db.WithContext(ctx), userID, start, end, excludeID)
	return firstConflict(q)
}

// firstConflict resolve a primeira reserva conflitante e devolve o id dela
// no erro, para o chamador saber com quem a janela colidiu.
func firstConflict(q *gorm.DB) error {
	var ids []uint
	if err := q.Order("id ASC").Limit(1).Pluck("id", &ids).Error; err != nil {
		return err
	}

	if len(ids) > 0 {
		return httperr.ErrBusinessf(
			"time_conflict",
			"Booking time conflicts with existing booking %d", ids[0],
		)
	}

	return nil
}

// --------------------------------------------------
// Booking (read / mutate)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.ServiceID != 0 {
		q = q.Where("service_id = ?", filter.ServiceID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var bookings []models.Booking
	if err := q.
		Order("id ASC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
