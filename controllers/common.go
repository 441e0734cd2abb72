package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/services"
)

// handleError maps service errors to HTTP responses at the boundary.
// Internal errors only expose detail outside release mode.
func handleError(c *gin.Context, log *zap.SugaredLogger, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados inválidos", "errors": verr.Fields})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email já registrado"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Credenciais inválidas"})
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Senha atual incorreta"})
	case errors.Is(err, services.ErrInvalidDueDate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Data de vencimento deve ser no futuro"})
	case errors.Is(err, services.ErrInvalidTaskID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID da tarefa inválido"})
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Tarefa não encontrada"})
	case errors.Is(err, services.ErrMissingToken),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrExpiredToken),
		errors.Is(err, services.ErrAccountDeactivated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Não autorizado"})
	default:
		log.Errorw("erro interno",
			"error", err,
			"path", c.Request.URL.Path,
			"requestID", c.GetString("requestID"),
		)
		body := gin.H{"message": "Erro interno do servidor"}
		if gin.Mode() != gin.ReleaseMode {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}
