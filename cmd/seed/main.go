package main

import (
	"context"
	"log"

	"github.com/bookingservices/booking-api/internal/config"
	dbpkg "github.com/bookingservices/booking-api/internal/db"
	"github.com/bookingservices/booking-api/internal/seed"
)

// Popula o banco com dados sintéticos. Roda à parte da API, sob demanda.
func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := seed.Run(context.Background(), db, cfg); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
}
