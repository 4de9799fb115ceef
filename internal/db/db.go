package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bookingservices/booking-api/internal/config"
	"github.com/bookingservices/booking-api/internal/models"
)

// NewDB abre o banco escolhido pela connection string: prefixo postgres://
// (ou postgresql://) usa o driver Postgres, qualquer outro valor é tratado
// como DSN SQLite (arquivo ou :memory:).
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(openDialector(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	if db.Dialector.Name() == "sqlite" {
		// Um :memory: por conexão; pool de 1 mantém todos na mesma base.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func openDialector(url string) gorm.Dialector {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}
