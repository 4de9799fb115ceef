package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/bookingservices/booking-api/internal/config"
	dbpkg "github.com/bookingservices/booking-api/internal/db"
	"github.com/bookingservices/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
