package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LeandroSimplicio/To-do-list/models"
	"github.com/LeandroSimplicio/To-do-list/services"
)

const userKey = "user"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// Auth resolves the bearer token to its account and aborts with 401 when it
// cannot.
func Auth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": authMessage(err)})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the account when a valid token is present and
// silently proceeds unauthenticated otherwise.
func OptionalAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := auth.Authenticate(c.Request.Context(), bearerToken(c)); err == nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated account stored by Auth. The second
// result is false on routes where OptionalAuth let the request through
// anonymously.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingToken):
		return "Acesso negado. Token não fornecido."
	case errors.Is(err, services.ErrExpiredToken):
		return "Token expirado. Faça login novamente."
	case errors.Is(err, services.ErrAccountDeactivated):
		return "Conta desativada. Entre em contato com o suporte."
	default:
		return "Token inválido."
	}
}
