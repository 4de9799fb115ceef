package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bookingservices/booking-api/internal/config"
	"github.com/bookingservices/booking-api/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
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

	return db
}

func TestRunGeneratesConfiguredCounts(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{SeedUsers: 20, SeedServices: 10, SeedBookings: 50}

	require.NoError(t, Run(context.Background(), db, cfg))

	var users, services, bookings int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookings).Error)

	require.EqualValues(t, 20, users)
	require.EqualValues(t, 10, services)
	require.EqualValues(t, 50, bookings)
}

func TestRunIsIdempotent(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{SeedUsers: 5, SeedServices: 3, SeedBookings: 8}

	require.NoError(t, Run(context.Background(), db, cfg))
	require.NoError(t, Run(context.Background(), db, cfg))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.EqualValues(t, 5, users)
}

func TestSeededRowsAreValid(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{SeedUsers: 10, SeedServices: 5, SeedBookings: 30}

	require.NoError(t, Run(context.Background(), db, cfg))

	// Emails e usernames únicos
	var distinctEmails int64
	require.NoError(t, db.Model(&models.User{}).Distinct("email").Count(&distinctEmails).Error)
	require.EqualValues(t, 10, distinctEmails)

	var distinctUsernames int64
	require.NoError(t, db.Model(&models.User{}).Distinct("username").Count(&distinctUsernames).Error)
	require.EqualValues(t, 10, distinctUsernames)

	// Serviços sempre em categoria conhecida, preço e duração válidos
	var services []models.Service
	require.NoError(t, db.Find(&services).Error)
	for _, s := range services {
		require.True(t, models.IsValidCategory(s.Category))
		require.GreaterOrEqual(t, s.Price, 0.0)
		require.Greater(t, s.DurationMinutes, 0)
	}

	// Toda reserva tem end > start e status do enum
	var bookings []models.Booking
	require.NoError(t, db.Find(&bookings).Error)
	for _, b := range bookings {
		require.True(t, b.EndTime.After(b.StartTime))
		require.Contains(t,
			[]string{"pending", "confirmed", "completed", "cancelled"},
			b.Status,
		)
	}
}
