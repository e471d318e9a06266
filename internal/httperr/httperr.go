package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message any    `json:"message"`
}

// Write envia o erro no formato padrão da API. Message pode ser uma
// string ou o mapa de erros de validação campo → mensagem.
func Write(c *gin.Context, status int, code string, message any) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code string, message any) {
	Write(c, http.StatusBadRequest, code, message)
}

// Conflitos de unicidade respondem 400, como os demais erros de
// requisição inválida.
func Conflict(c *gin.Context, code string, message any) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code string, message any) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code string, message any) {
	Write(c, http.StatusInternalServerError, code, message)
}
