package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookingservices/booking-api/internal/config"
)

// pagination lê skip/limit da query string. skip < 0 vira 0; limit ausente
// ou inválido usa o default e nunca passa do máximo configurado.
func pagination(c *gin.Context, cfg *config.Config) (skip, limit int) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(cfg.DefaultPageSize)))
	if err != nil || limit <= 0 {
		limit = cfg.DefaultPageSize
	}
	if limit > cfg.MaxPageSize {
		limit = cfg.MaxPageSize
	}

	return skip, limit
}

// uintParam converte um path param numérico; 0 indica valor inválido.
func uintParam(c *gin.Context, name string) uint {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

// uintQuery converte um query param numérico opcional; ausente ou inválido vira 0.
func uintQuery(c *gin.Context, name string) uint {
	v := c.Query(name)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}
