package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/bookingservices/booking-api/internal/domain/booking"
	"github.com/bookingservices/booking-api/internal/httperr"
	"github.com/bookingservices/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// StatsHandler agrega contagens direto do banco, sem cache:
// cada request recalcula tudo.
type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type groupCount struct {
	Grp   string `gorm:"column:grp"`
	Count int64  `gorm:"column:count"`
}

type monthTrend struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *StatsHandler) Bookings(c *gin.Context) {
	var total int64
	if err := h.db.Model(&models.Booking{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "Failed to compute booking stats")
		return
	}

	var byStatus []groupCount
	if err := h.db.
		Model(&models.Booking{}).
		Select("status AS grp, COUNT(id) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {

		httperr.Internal(c, "Failed to compute booking stats")
		return
	}

	distribution := map[string]int64{}
	for _, row := range byStatus {
		distribution[row.Grp] = row.Count
	}

	trends, err := h.monthlyTrends(12)
	if err != nil {
		httperr.Internal(c, "Failed to compute booking stats")
		return
	}

	var revenue struct {
		Total   float64 `gorm:"column:total"`
		Average float64 `gorm:"column:average"`
	}
	if err := h.db.
		Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0) AS total, COALESCE(AVG(total_price), 0) AS average").
		Where("status = ?", string(domain.StatusCompleted)).
		Scan(&revenue).Error; err != nil {

		httperr.Internal(c, "Failed to compute booking stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_bookings":      total,
		"status_distribution": distribution,
		"monthly_trends":      trends,
		"revenue": gin.H{
			"total":               revenue.Total,
			"average_per_booking": revenue.Average,
		},
	})
}

// monthlyTrends conta reservas por mês-calendário, do mês corrente
// para trás.
func (h *StatsHandler) monthlyTrends(months int) ([]monthTrend, error) {
	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	trends := make([]monthTrend, 0, months)
	for i := 0; i < months; i++ {
		start := firstOfMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		var count int64
		if err := h.db.
			Model(&models.Booking{}).
			Where("booking_date >= ? AND booking_date < ?", start, end).
			Count(&count).Error; err != nil {
			return nil, err
		}

		trends = append(trends, monthTrend{
			Month: start.Format("2006-01"),
			Count: count,
		})
	}

	return trends, nil
}

// ======================================================
// SERVICES
// ======================================================

func (h *StatsHandler) Services(c *gin.Context) {
	var total, available int64
	if err := h.db.Model(&models.Service{}).Count(&total).Error; err != nil {
		httperr.Internal(c, "Failed to compute service stats")
		return
	}
	if err := h.db.
		Model(&models.Service{}).
		Where("is_available = ?", true).
		Count(&available).Error; err != nil {

		httperr.Internal(c, "Failed to compute service stats")
		return
	}

	var byCategory []groupCount
	if err := h.db.
		Model(&models.Service{}).
		Select("category AS grp, COUNT(id) AS count").
		Group("category").
		Scan(&byCategory).Error; err != nil {

		httperr.Internal(c, "Failed to compute service stats")
		return
	}

	distribution := map[string]int64{}
	for _, row := range byCategory {
		distribution[row.Grp] = row.Count
	}

	var prices struct {
		Min     float64 `gorm:"column:min"`
		Max     float64 `gorm:"column:max"`
		Average float64 `gorm:"column:average"`
	}
	if err := h.db.
		Model(&models.Service{}).
		Select("COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max, COALESCE(AVG(price), 0) AS average").
		Scan(&prices).Error; err != nil {

		httperr.Internal(c, "Failed to compute service stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_services":        total,
		"available_services":    available,
		"unavailable_services":  total - available,
		"category_distribution": distribution,
		"price_range": gin.H{
			"min":     prices.Min,
			"max":     prices.Max,
			"average": prices.Average,
		},
	})
}
