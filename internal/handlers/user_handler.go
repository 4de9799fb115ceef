package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookingservices/booking-api/internal/config"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
)

type UserHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Username *string `json:"username,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to create user: invalid payload")
		return
	}

	if err := h.assertUnique(req.Email, req.Username, 0); err != nil {
		if detail, ok := httperr.BusinessDetail(err); ok {
			httperr.BadRequest(c, detail)
			return
		}
		httperr.Internal(c, "Failed to create user")
		return
	}

	user := models.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("user create failed: %v", err)
		httperr.BadRequest(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) List(c *gin.Context) {
	skip, limit := pagination(c, h.cfg)

	users := []models.User{}
	if err := h.db.
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&users).Error; err != nil {

		httperr.Internal(c, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id := uintParam(c, "id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "User", ID: id}.Error())
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := uintParam(c, "id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "User", ID: id}.Error())
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to update user: invalid payload")
		return
	}

	email, username := user.Email, user.Username
	if req.Email != nil {
		email = *req.Email
	}
	if req.Username != nil {
		username = *req.Username
	}

	if err := h.assertUnique(email, username, user.ID); err != nil {
		if detail, ok := httperr.BusinessDetail(err); ok {
			httperr.BadRequest(c, detail)
			return
		}
		httperr.Internal(c, "Failed to update user")
		return
	}

	user.Email = email
	user.Username = username
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete remove o usuário e, na mesma transação, as reservas dele
// (política de cascata explícita, sem depender de FK do banco).
func (h *UserHandler) Delete(c *gin.Context) {
	id := uintParam(c, "id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.NotFoundError{Entity: "User", ID: id}.Error())
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ?", user.ID).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})

	if err != nil {
		log.Printf("user delete failed: %v", err)
		httperr.Internal(c, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Helpers ---------

// assertUnique garante email e username únicos; excludeID ignora o próprio
// registro em updates.
func (h *UserHandler) assertUnique(email, username string, excludeID uint) error {
	var count int64

	q := h.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusinessf("duplicate_email", "Email %s is already registered", email)
	}

	q = h.db.Model(&models.User{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusinessf("duplicate_username", "Username %s is already taken", username)
	}

	return nil
}
