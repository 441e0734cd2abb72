package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/middleware"
	"github.com/LeandroSimplicio/To-do-list/models"
	"github.com/LeandroSimplicio/To-do-list/services"
)

// TaskController exposes the task CRUD, listing and dashboard endpoints.
type TaskController struct {
	tasks *services.TaskService
	log   *zap.SugaredLogger
}

// NewTaskController wires the controller to the task query engine.
func NewTaskController(tasks *services.TaskService, log *zap.SugaredLogger) *TaskController {
	return &TaskController{tasks: tasks, log: log}
}

// parseListOptions reads the listing query parameters. Malformed numbers and
// booleans surface as per-field validation errors; value checks (enum
// membership, page bounds) happen in the service.
func parseListOptions(c *gin.Context) (services.ListOptions, error) {
	opts := services.ListOptions{
		Page:      1,
		Limit:     10,
		Category:  c.Query("category"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	var fields []services.FieldError
	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, services.FieldError{Field: "page", Message: "Página deve ser um número positivo"})
		} else {
			opts.Page = page
		}
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, services.FieldError{Field: "limit", Message: "Limite deve ser entre 1 e 100"})
		} else {
			opts.Limit = limit
		}
	}
	if v := c.Query("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			fields = append(fields, services.FieldError{Field: "completed", Message: "Completed deve ser boolean"})
		} else {
			opts.Completed = &completed
		}
	}
	if v := c.Query("overdue"); v != "" {
		overdue, err := strconv.ParseBool(v)
		if err != nil {
			fields = append(fields, services.FieldError{Field: "overdue", Message: "Overdue deve ser boolean"})
		} else {
			opts.Overdue = overdue
		}
	}

	if len(fields) > 0 {
		return opts, &services.ValidationError{Fields: fields}
	}
	return opts, nil
}

// List handles GET /api/tasks.
func (tc *TaskController) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	opts, err := parseListOptions(c)
	if err != nil {
		handleError(c, tc.log, err)
		return
	}

	result, err := tc.tasks.List(c.Request.Context(), user.ID, opts)
	if err != nil {
		handleError(c, tc.log, err)
		return
	}

	c.JSON(http.StatusOK, models.TaskListResponse{
		Tasks:      models.NewTaskResponses(result.Tasks, time.Now()),
		Pagination: result.Pagination,
		Stats:      result.Stats,
	})
}

// Get handles GET /api/tasks/:id.
func (tc *TaskController) Get(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	task, err := tc.tasks.Get(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		handleError(c, tc.log, err)
		return
	}

	c.JSON(http.StatusOK, models.NewTaskResponse(*task, time.Now()))
}

// Create handles POST /api/tasks.
func (tc *TaskController) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	task, err := tc.tasks.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		handleError(c, tc.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tarefa criada com sucesso",
		"task":    models.NewTaskResponse(*task, time.Now()),
	})
}

// Update handles PUT /api/tasks/:id.
func (tc *TaskController) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	task, err := tc.tasks.Update(c.Request.Context(), user.ID, c.Param("id"), req)
	if err != nil {
		handleError(c, tc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tarefa atualizada com sucesso",
		"task":    models.NewTaskResponse(*task, time.Now()),
	})
}

// Delete handles DELETE /api/tasks/:id.
func (tc *TaskController) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := tc.tasks.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		handleError(c, tc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tarefa deletada com sucesso"})
}

// AddSubtask handles POST /api/tasks/:id/subtasks.
func (tc *TaskController) AddSubtask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.AddSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Corpo da requisição inválido")
		return
	}

	task, err := tc.tasks.AddSubtask(c.Request.Context(), user.ID, c.Param("id"), req.Title)
	if err != nil {
		handleError(c, tc.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subtarefa adicionada com sucesso",
		"task":    models.NewTaskResponse(*task, time.Now()),
	})
}

// Dashboard handles GET /api/tasks/stats/dashboard.
func (tc *TaskController) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	stats, err := tc.tasks.DashboardStats(c.Request.Context(), user.ID)
	if err != nil {
		handleError(c, tc.log, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
