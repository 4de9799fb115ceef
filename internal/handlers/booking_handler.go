package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookingservices/booking-api/internal/config"
	domain "github.com/bookingservices/booking-api/internal/domain/booking"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
	ucBooking "github.com/bookingservices/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	cfg *config.Config

	createUC     *ucBooking.CreateBooking
	rescheduleUC *ucBooking.RescheduleBooking
	transitionUC *ucBooking.TransitionStatus

	repo domain.Repository
}

func NewBookingHandler(
	cfg *config.Config,
	createUC *ucBooking.CreateBooking,
	rescheduleUC *ucBooking.RescheduleBooking,
	transitionUC *ucBooking.TransitionStatus,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		cfg:          cfg,
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		transitionUC: transitionUC,
		repo:         repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserID      uint      `json:"user_id" binding:"required"`
	ServiceID   uint      `json:"service_id" binding:"required"`
	BookingDate time.Time `json:"booking_date" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Notes       string    `json:"notes"`
	TotalPrice  float64   `json:"total_price" binding:"gte=0"`
}

type UpdateBookingRequest struct {
	BookingDate *time.Time `json:"booking_date,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	TotalPrice  *float64   `json:"total_price,omitempty" binding:"omitempty,gte=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to create booking: invalid payload")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:      req.UserID,
		ServiceID:   req.ServiceID,
		BookingDate: req.BookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
		TotalPrice:  req.TotalPrice,
	})
	if err != nil {
		h.writeBookingError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	skip, limit := pagination(c, h.cfg)

	filter := domain.ListFilter{
		UserID:    uintQuery(c, "user_id"),
		ServiceID: uintQuery(c, "service_id"),
		Status:    strings.TrimSpace(c.Query("status_filter")),
		Skip:      skip,
		Limit:     limit,
	}

	bookings, err := h.repo.ListBookings(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "Failed to list bookings")
		return
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id := uintParam(c, "id")

	b, err := h.repo.GetBooking(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "Booking", ID: id}.Error())
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id := uintParam(c, "id")

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to update booking: invalid payload")
		return
	}

	b, err := h.rescheduleUC.Execute(c.Request.Context(), ucBooking.RescheduleBookingInput{
		BookingID:   id,
		BookingDate: req.BookingDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
		TotalPrice:  req.TotalPrice,
	})
	if err != nil {
		h.writeBookingError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id := uintParam(c, "id")

	if _, err := h.repo.GetBooking(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "Booking", ID: id}.Error())
		return
	}

	if err := h.repo.DeleteBooking(c.Request.Context(), id); err != nil {
		log.Printf("booking delete failed: %v", err)
		httperr.Internal(c, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS
// ======================================================

// UpdateStatus aceita o status como query param (?status=confirmed) ou,
// na falta dele, como corpo JSON {"status": "confirmed"}.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := uintParam(c, "id")

	target := strings.TrimSpace(c.Query("status"))
	if target == "" {
		var req UpdateBookingStatusRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			target = strings.TrimSpace(req.Status)
		}
	}

	if !domain.IsValidStatus(target) {
		httperr.BadRequest(c,
			"Invalid status. Must be one of: pending, confirmed, cancelled, completed")
		return
	}

	b, err := h.transitionUC.Execute(c.Request.Context(), id, domain.Status(target))
	if err != nil {
		h.writeBookingError(c, err, "Failed to update booking status")
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// writeBookingError traduz a taxonomia de erros do domínio para o status
// HTTP da tabela da API: NotFound → 404, regra de negócio → 400, resto → 500.
func (h *BookingHandler) writeBookingError(c *gin.Context, err error, generic string) {
	if httperr.IsNotFound(err) {
		httperr.NotFound(c, err.Error())
		return
	}

	if httperr.IsBusiness(err, "invalid_range") {
		httperr.BadRequest(c, "End time must be after start time")
		return
	}

	if detail, ok := httperr.BusinessDetail(err); ok {
		httperr.BadRequest(c, detail)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, generic)
		return
	}

	log.Printf("%s: %v", generic, err)
	httperr.Internal(c, generic)
}
