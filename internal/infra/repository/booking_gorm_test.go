package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/bookingservices/booking-api/internal/domain/booking"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
)

func setupRepo(t *testing.T) (*BookingGormRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
	))

	return NewBookingGormRepository(db), db
}

func fixtures(t *testing.T, db *gorm.DB) (models.User, models.Service) {
	t.Helper()

	user := models.User{
		Email:    "ana@example.com",
		Username: "ana",
		FullName: "Ana Souza",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)

	svc := models.Service{
		Name:            "Massage Therapy",
		Price:           50,
		DurationMinutes: 30,
		Category:        "Healthcare",
		IsAvailable:     true,
	}
	require.NoError(t, db.Create(&svc).Error)

	return user, svc
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 10, hour, min, 0, 0, time.UTC)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	repo, db := setupRepo(t)
	user, svc := fixtures(t, db)
	ctx := context.Background()

	first := &models.Booking{
		UserID:      user.ID,
		ServiceID:   svc.ID,
		BookingDate: at(0, 0),
		StartTime:   at(10, 0),
		EndTime:     at(10, 30),
		Status:      string(domain.StatusPending),
		TotalPrice:  50,
	}
	require.NoError(t, repo.CreateBooking(ctx, first))

	overlapping := &models.Booking{
		UserID:      user.ID,
		ServiceID:   svc.ID,
		BookingDate: at(0, 0),
		StartTime:   at(10, 15),
		EndTime:     at(10, 45),
		Status:      string(domain.StatusPending),
		TotalPrice:  50,
	}
	err := repo.CreateBooking(ctx, overlapping)
	require.True(t, httperr.IsBusiness(err, "time_conflict"))

	// Janelas encostadas não conflitam: [10:00,10:30) e [10:30,11:00).
	adjacent := &models.Booking{
		UserID:      user.ID,
		ServiceID:   svc.ID,
		BookingDate: at(0, 0),
		StartTime:   at(10, 30),
		EndTime:     at(11, 0),
		Status:      string(domain.StatusPending),
		TotalPrice:  50,
	}
	require.NoError(t, repo.CreateBooking(ctx, adjacent))
}

func TestCancelledBookingDoesNotBlockWindow(t *testing.T) {
	repo, db := setupRepo(t)
	user, svc := fixtures(t, db)
	ctx := context.Background()

	cancelled := &models.Booking{
		UserID:      user.ID,
		ServiceID:   svc.ID,
		BookingDate: at(0, 0),
		StartTime:   at(10, 0),
		EndTime:     at(10, 30),
		Status:      string(domain.StatusCancelled),
		TotalPrice:  50,
	}
	require.NoError(t, db.Create(cancelled).Error)

	b := &models.Booking{
		UserID:      user.ID,
		ServiceID:   svc.ID,
		BookingDate: at(0, 0),
		StartTime:   at(10, 0),
		EndTime:     at(10, 30),
		Status:      string(domain.StatusPending),
		TotalPrice:  50,
	}
	require.NoError(t, repo.CreateBooking(ctx, b))
}

func TestAssertNoTimeConflictExcludesSelf(t *testing.T) {
	repo, db := setupRepo(t)
	user, svc := fixtures(t, db)
	ctx := context.Background()

	b := &models.Booking{
		UserID:      user.ID,
		ServiceID:   svc.ID,
		BookingDate: at(0, 0),
		StartTime:   at(10, 0),
		EndTime:     at(10, 30),
		Status:      string(domain.StatusPending),
		TotalPrice:  50,
	}
	require.NoError(t, repo.CreateBooking(ctx, b))

	// Mesma janela, mas ignorando a própria reserva: sem conflito.
	require.NoError(t, repo.AssertNoTimeConflict(
		ctx, user.ID, at(10, 0), at(10, 30), b.ID,
	))

	// Sem exclusão ela mesma conflita.
	err := repo.AssertNoTimeConflict(ctx, user.ID, at(10, 0), at(10, 30), 0)
	require.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestListBookingsFilters(t *testing.T) {
	repo, db := setupRepo(t)
	user, svc := fixtures(t, db)
	ctx := context.Background()

	other := models.User{Email: "bob@example.com", Username: "bob", FullName: "Bob Lima", IsActive: true}
	require.NoError(t, db.Create(&other).Error)

	for i := 0; i < 6; i++ {
		owner := user.ID
		status := string(domain.StatusPending)
		if i%2 == 1 {
			owner = other.ID
			status = string(domain.StatusConfirmed)
		}
		require.NoError(t, db.Create(&models.Booking{
			UserID:      owner,
			ServiceID:   svc.ID,
			BookingDate: at(0, 0),
			StartTime:   at(8+i, 0),
			EndTime:     at(8+i, 30),
			Status:      status,
			TotalPrice:  50,
		}).Error)
	}

	got, err := repo.ListBookings(ctx, domain.ListFilter{UserID: user.ID, Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 3)

	got, err = repo.ListBookings(ctx, domain.ListFilter{
		UserID: other.ID,
		Status: string(domain.StatusConfirmed),
		Limit:  100,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Filtro desconhecido: resultado vazio, não erro.
	got, err = repo.ListBookings(ctx, domain.ListFilter{UserID: 9999, Limit: 100})
	require.NoError(t, err)
	require.Empty(t, got)

	// Paginação estável por id.
	got, err = repo.ListBookings(ctx, domain.ListFilter{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, uint(3), got[0].ID)
	require.Equal(t, uint(4), got[1].ID)
}
