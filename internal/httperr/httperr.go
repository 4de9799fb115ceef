package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError é o corpo de erro padrão da API: {"detail": "<mensagem>"}.
type HTTPError struct {
	Detail string `json:"detail"`
}

func Write(c *gin.Context, status int, detail string) {
	c.JSON(status, HTTPError{Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	Write(c, http.StatusBadRequest, detail)
}

func NotFound(c *gin.Context, detail string) {
	Write(c, http.StatusNotFound, detail)
}

func Internal(c *gin.Context, detail string) {
	Write(c, http.StatusInternalServerError, detail)
}
