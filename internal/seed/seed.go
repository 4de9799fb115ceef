// Package seed popula o banco com dados sintéticos para teste manual.
// Nunca roda implicitamente no start da API: é invocado pelo binário
// cmd/seed ou por um harness de teste, e é idempotente.
package seed

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookingservices/booking-api/internal/config"
	domain "github.com/bookingservices/booking-api/internal/domain/booking"
	"github.com/bookingservices/booking-api/internal/models"
)

const insertBatchSize = 200

// Pools de nomes por categoria, para os serviços gerados parecerem reais.
var serviceNames = map[string][]string{
	"Healthcare": {
		"Doctor Consultation", "Dental Checkup", "Physiotherapy", "Massage Therapy",
		"Eye Examination", "Blood Test", "Vaccination", "Health Screening",
	},
	"Beauty & Wellness": {
		"Haircut & Styling", "Facial Treatment", "Manicure & Pedicure", "Spa Massage",
		"Makeup Application", "Hair Coloring", "Skin Treatment", "Nail Art",
	},
	"Fitness": {
		"Personal Training", "Yoga Class", "Pilates Session", "Swimming Lesson",
		"Dance Class", "Boxing Training", "CrossFit Session", "Meditation Class",
	},
	"Education": {
		"Tutoring Session", "Language Class", "Music Lesson", "Art Workshop",
		"Cooking Class", "Photography Lesson", "Coding Bootcamp", "Test Preparation",
	},
	"Technology": {
		"Computer Repair", "Software Installation", "Website Development", "Data Recovery",
		"Network Setup", "IT Consultation", "Hardware Upgrade", "Virus Removal",
	},
	"Home Services": {
		"House Cleaning", "Plumbing Service", "Electrical Work", "Gardening",
		"Painting", "Carpentry", "Moving Service", "Security Installation",
	},
	"Automotive": {
		"Car Wash", "Oil Change", "Tire Rotation", "Brake Service",
		"Engine Tune-up", "Car Detailing", "Battery Replacement", "AC Service",
	},
	"Entertainment": {
		"Event Planning", "Photography", "Videography", "DJ Service",
		"Live Music", "Party Decoration", "Catering", "Entertainment Booking",
	},
	"Professional Services": {
		"Legal Consultation", "Accounting Service", "Marketing Consultation", "HR Services",
		"Business Planning", "Financial Advisory", "Tax Preparation", "Insurance Services",
	},
	"Food & Dining": {
		"Catering Service", "Food Delivery", "Cooking Class", "Wine Tasting",
		"Restaurant Booking", "Chef Service", "Food Photography", "Recipe Development",
	},
	"Travel": {
		"Travel Planning", "Hotel Booking", "Flight Booking", "Tour Guide",
		"Car Rental", "Travel Insurance", "Visa Services", "Adventure Tours",
	},
	"Shopping": {
		"Personal Shopping", "Gift Wrapping", "Product Consultation", "Shopping Assistant",
		"Fashion Styling", "Interior Design", "Jewelry Consultation", "Electronics Setup",
	},
}

var durations = []int{30, 45, 60, 90, 120, 180}

// Run gera usuários, serviços e reservas nas quantidades da configuração.
// Se já existirem usuários, não faz nada.
func Run(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Println("seed: existing data detected, skipping")
		return nil
	}

	users, err := generateUsers(ctx, db, cfg.SeedUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	services, err := generateServices(ctx, db, cfg.SeedServices)
	if err != nil {
		return fmt.Errorf("seed services: %w", err)
	}

	if err := generateBookings(ctx, db, users, services, cfg.SeedBookings); err != nil {
		return fmt.Errorf("seed bookings: %w", err)
	}

	log.Printf("seed: done - users=%d services=%d bookings=%d",
		len(users), len(services), cfg.SeedBookings)
	return nil
}

func generateUsers(ctx context.Context, db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		// Sufixo uuid garante unicidade de email/username, o gerador do
		// gofakeit repete valores em volumes grandes.
		suffix := uuid.NewString()[:8]

		users = append(users, models.User{
			Email:    fmt.Sprintf("%s.%s@%s", gofakeit.Username(), suffix, gofakeit.DomainName()),
			Username: fmt.Sprintf("%s_%s", gofakeit.Username(), suffix),
			FullName: gofakeit.Name(),
			Phone:    gofakeit.Phone(),
			IsActive: rand.Intn(4) != 0, // 75% ativos
		})
	}

	if err := db.WithContext(ctx).CreateInBatches(&users, insertBatchSize).Error; err != nil {
		return nil, err
	}

	log.Printf("seed: users generated - count=%d", len(users))
	return users, nil
}

func generateServices(ctx context.Context, db *gorm.DB, count int) ([]models.Service, error) {
	services := make([]models.Service, 0, count)
	for i := 0; i < count; i++ {
		category := models.Categories[rand.Intn(len(models.Categories))]
		names := serviceNames[category]

		services = append(services, models.Service{
			Name:            fmt.Sprintf("%s #%d", names[rand.Intn(len(names))], i+1),
			Description:     gofakeit.Sentence(12),
			Price:           math.Round((20+rand.Float64()*480)*100) / 100,
			DurationMinutes: durations[rand.Intn(len(durations))],
			Category:        category,
			IsAvailable:     rand.Intn(4) != 0, // 75% disponíveis
		})
	}

	if err := db.WithContext(ctx).CreateInBatches(&services, insertBatchSize).Error; err != nil {
		return nil, err
	}

	log.Printf("seed: services generated - count=%d", len(services))
	return services, nil
}

func generateBookings(
	ctx context.Context,
	db *gorm.DB,
	users []models.User,
	services []models.Service,
	count int,
) error {

	if len(users) == 0 || len(services) == 0 {
		return nil
	}

	now := time.Now().UTC()

	bookings := make([]models.Booking, 0, count)
	for i := 0; i < count; i++ {
		user := users[rand.Intn(len(users))]
		svc := services[rand.Intn(len(services))]

		// Reservas espalhadas pelos últimos 2 anos.
		day := now.AddDate(0, 0, -rand.Intn(730))
		bookingDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		start := bookingDate.Add(time.Duration(8+rand.Intn(10)) * time.Hour)
		end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

		notes := ""
		if rand.Float64() < 0.3 {
			notes = gofakeit.Sentence(8)
		}

		bookings = append(bookings, models.Booking{
			UserID:      user.ID,
			ServiceID:   svc.ID,
			BookingDate: bookingDate,
			StartTime:   start,
			EndTime:     end,
			Status:      randomStatus(),
			Notes:       notes,
			TotalPrice:  math.Round(svc.Price*(0.8+rand.Float64()*0.4)*100) / 100,
		})
	}

	if err := db.WithContext(ctx).CreateInBatches(&bookings, insertBatchSize).Error; err != nil {
		return err
	}

	log.Printf("seed: bookings generated - count=%d", len(bookings))
	return nil
}

func randomStatus() string {
	r := rand.Float64()
	switch {
	case r < 0.40:
		return string(domain.StatusCompleted)
	case r < 0.65:
		return string(domain.StatusConfirmed)
	case r < 0.85:
		return string(domain.StatusPending)
	default:
		return string(domain.StatusCancelled)
	}
}
