package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/middleware"
	"github.com/LeandroSimplicio/To-do-list/models"
	"github.com/LeandroSimplicio/To-do-list/services"
)

// AuthController exposes registration, login and profile maintenance.
type AuthController struct {
	auth *services.AuthService
	log  *zap.SugaredLogger
}

// NewAuthController wires the controller to its service.
func NewAuthController(auth *services.AuthService, log *zap.SugaredLogger) *AuthController {
	return &AuthController{auth: auth, log: log}
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	token, user, err := ac.auth.Register(c.Request.Context(), req)
	if err != nil {
		handleError(c, ac.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso",
		"token":   token,
		"user":    user.PublicProfile(),
	})
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	token, user, err := ac.auth.Login(c.Request.Context(), req)
	if err != nil {
		handleError(c, ac.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso",
		"token":   token,
		"user":    user.PublicProfile(),
	})
}

// Me handles GET /api/auth/me.
func (ac *AuthController) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": user.PublicProfile()})
}

// UpdateProfile handles PUT /api/auth/profile.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	updated, err := ac.auth.UpdateProfile(c.Request.Context(), user, req)
	if err != nil {
		handleError(c, ac.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil atualizado com sucesso",
		"user":    updated.PublicProfile(),
	})
}

// ChangePassword handles POST /api/auth/change-password.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}
	if req.CurrentPassword == "" {
		badRequest(c, "Senha atual é obrigatória")
		return
	}

	if err := ac.auth.ChangePassword(c.Request.Context(), user, req); err != nil {
		handleError(c, ac.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso"})
}
