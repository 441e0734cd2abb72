package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/config"
	"github.com/LeandroSimplicio/To-do-list/controllers"
	"github.com/LeandroSimplicio/To-do-list/middleware"
	"github.com/LeandroSimplicio/To-do-list/services"
)

// Deps carries everything the route tree needs, built once in main.
type Deps struct {
	Config config.Config
	Redis  *redis.Client
	Auth   *services.AuthService
	Tasks  *services.TaskService
	Users  *services.UserService
	Log    *zap.SugaredLogger
}

// RegisterRoutes mounts the API surface.
func RegisterRoutes(r *gin.Engine, d Deps) {
	authController := controllers.NewAuthController(d.Auth, d.Log)
	taskController := controllers.NewTaskController(d.Tasks, d.Log)
	userController := controllers.NewUserController(d.Users, d.Log)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(d.Redis, d.Config.RateLimitMax, d.Config.RateLimitWindow(), d.Log))

	// Public routes
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)

	// Authenticated routes
	private := api.Group("")
	private.Use(middleware.Auth(d.Auth))
	{
		private.GET("/auth/me", authController.Me)
		private.PUT("/auth/profile", authController.UpdateProfile)
		private.POST("/auth/change-password", authController.ChangePassword)

		private.GET("/tasks", taskController.List)
		private.POST("/tasks", taskController.Create)
		private.GET("/tasks/stats/dashboard", taskController.Dashboard)
		private.GET("/tasks/:id", taskController.Get)
		private.PUT("/tasks/:id", taskController.Update)
		private.DELETE("/tasks/:id", taskController.Delete)
		private.POST("/tasks/:id/subtasks", taskController.AddSubtask)

		private.GET("/users/profile", userController.Profile)
		private.PUT("/users/preferences", userController.UpdatePreferences)
		private.PUT("/users/avatar", userController.UpdateAvatar)
		private.DELETE("/users/account", userController.DeactivateAccount)
		private.GET("/users/export", userController.Export)
		private.GET("/users/categories", userController.Categories)
	}

	// Healthcheck; tolerates anonymous callers.
	r.GET("/ping", middleware.OptionalAuth(d.Auth), func(c *gin.Context) {
		_, authenticated := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"message": "pong", "authenticated": authenticated})
	})
}
