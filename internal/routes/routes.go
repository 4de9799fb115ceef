package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookingservices/booking-api/internal/config"
	"github.com/bookingservices/booking-api/internal/handlers"
	infraRepo "github.com/bookingservices/booking-api/internal/infra/repository"
	"github.com/bookingservices/booking-api/internal/middleware"
	ucBooking "github.com/bookingservices/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)
	rescheduleBookingUC := ucBooking.NewRescheduleBooking(bookingRepo)
	transitionStatusUC := ucBooking.NewTransitionStatus(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	rootHandler := handlers.NewRootHandler()
	userHandler := handlers.NewUserHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db, cfg)
	statsHandler := handlers.NewStatsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		cfg,
		createBookingUC,
		rescheduleBookingUC,
		transitionStatusUC,
		bookingRepo,
	)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/", rootHandler.Info)
	r.GET("/health", rootHandler.Health)

	users := r.Group("/users")
	{
		users.POST("/", userHandler.Create)
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	services := r.Group("/services")
	{
		services.POST("/", serviceHandler.Create)
		services.GET("/", serviceHandler.List)
		services.GET("/:id", serviceHandler.Get)
		services.PUT("/:id", serviceHandler.Update)
		services.DELETE("/:id", serviceHandler.Delete)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("/", bookingHandler.Create)
		bookings.GET("/", bookingHandler.List)
		bookings.GET("/:id", bookingHandler.Get)
		bookings.PUT("/:id", bookingHandler.Update)
		bookings.DELETE("/:id", bookingHandler.Delete)
		bookings.PATCH("/:id/status", bookingHandler.UpdateStatus)
	}

	stats := r.Group("/stats")
	{
		stats.GET("/bookings", statsHandler.Bookings)
		stats.GET("/services", statsHandler.Services)
	}
}
