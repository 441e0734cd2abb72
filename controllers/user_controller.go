package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/middleware"
	"github.com/LeandroSimplicio/To-do-list/models"
	"github.com/LeandroSimplicio/To-do-list/services"
)

// UserController exposes the account-management endpoints.
type UserController struct {
	users *services.UserService
	log   *zap.SugaredLogger
}

// NewUserController wires the controller to its service.
func NewUserController(users *services.UserService, log *zap.SugaredLogger) *UserController {
	return &UserController{users: users, log: log}
}

// Profile handles GET /api/users/profile.
func (uc *UserController) Profile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	stats, err := uc.users.ProfileStats(c.Request.Context(), user)
	if err != nil {
		handleError(c, uc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.PublicProfile(),
		"stats": stats,
	})
}

// UpdatePreferences handles PUT /api/users/preferences.
func (uc *UserController) UpdatePreferences(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var patch models.PreferencesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	prefs, err := uc.users.UpdatePreferences(c.Request.Context(), user, patch)
	if err != nil {
		handleError(c, uc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Preferências atualizadas com sucesso",
		"preferences": prefs,
	})
}

// UpdateAvatar handles PUT /api/users/avatar.
func (uc *UserController) UpdateAvatar(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	avatar, err := uc.users.UpdateAvatar(c.Request.Context(), user, req.Avatar)
	if err != nil {
		handleError(c, uc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar atualizado com sucesso",
		"avatar":  avatar,
	})
}

// DeactivateAccount handles DELETE /api/users/account.
func (uc *UserController) DeactivateAccount(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.DeactivateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		badRequest(c, "Senha é obrigatória para desativar a conta")
		return
	}

	if err := uc.users.DeactivateAccount(c.Request.Context(), user, req.Password); err != nil {
		handleError(c, uc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conta desativada com sucesso"})
}

// Export handles GET /api/users/export.
func (uc *UserController) Export(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	data, err := uc.users.Export(c.Request.Context(), user)
	if err != nil {
		handleError(c, uc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dados exportados com sucesso",
		"data":    data,
	})
}

// Categories handles GET /api/users/categories.
func (uc *UserController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}
