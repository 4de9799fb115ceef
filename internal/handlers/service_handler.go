package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookingservices/booking-api/internal/config"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
)

type ServiceHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewServiceHandler(db *gorm.DB, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{db: db, cfg: cfg}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=1"`
	Category        string  `json:"category" binding:"required"`
	IsAvailable     *bool   `json:"is_available,omitempty"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" binding:"omitempty,min=1"`
	Category        *string  `json:"category,omitempty"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to create service: invalid payload")
		return
	}

	if !models.IsValidCategory(req.Category) {
		httperr.BadRequest(c, "Failed to create service: unknown category "+req.Category)
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	svc := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		IsAvailable:     available,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		log.Printf("service create failed: %v", err)
		httperr.BadRequest(c, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	skip, limit := pagination(c, h.cfg)

	category := strings.TrimSpace(c.Query("category"))
	availableStr := strings.TrimSpace(c.Query("available"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Service{})

	if category != "" {
		q = q.Where("category = ?", category)
	}

	if availableStr == "true" {
		q = q.Where("is_available = ?", true)
	} else if availableStr == "false" {
		q = q.Where("is_available = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	services := []models.Service{}
	if err := q.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&services).Error; err != nil {

		httperr.Internal(c, "Failed to list services")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := uintParam(c, "id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "Service", ID: id}.Error())
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := uintParam(c, "id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "Service", ID: id}.Error())
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to update service: invalid payload")
		return
	}

	if req.Category != nil && !models.IsValidCategory(*req.Category) {
		httperr.BadRequest(c, "Failed to update service: unknown category "+*req.Category)
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.IsAvailable != nil {
		svc.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// Delete remove o serviço e as reservas dele na mesma transação,
// espelhando a política de cascata do delete de usuário.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := uintParam(c, "id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "Service", ID: id}.Error())
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("service_id = ?", svc.ID).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&svc).Error
	})

	if err != nil {
		log.Printf("service delete failed: %v", err)
		httperr.Internal(c, "Failed to delete service")
		return
	}

	c.Status(http.StatusNoContent)
}
