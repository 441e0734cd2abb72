package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/models"
)

// TaskService is the query engine over the tasks collection: listing with
// filters and pagination, CRUD and aggregate statistics. Every operation is
// scoped to one owner; a task belonging to someone else is indistinguishable
// from a missing one.
type TaskService struct {
	tasks *mongo.Collection
	log   *zap.SugaredLogger
}

// NewTaskService creates a TaskService backed by the tasks collection.
func NewTaskService(db *mongo.Database, log *zap.SugaredLogger) *TaskService {
	return &TaskService{tasks: db.Collection("tasks"), log: log}
}

// ListResult is one page of tasks plus metadata and owner-wide stats.
type ListResult struct {
	Tasks      []models.Task
	Pagination models.Pagination
	Stats      models.TaskStats
}

// List returns one page of the owner's tasks under the given filters,
// together with pagination metadata and stats computed over the owner's
// entire collection, not just the page.
func (s *TaskService) List(ctx context.Context, userID primitive.ObjectID, opts ListOptions) (*ListResult, error) {
	if err := ValidateListOptions(opts); err != nil {
		return nil, err
	}

	now := time.Now()
	filter := buildListFilter(userID, opts, now)

	findOpts := options.Find().
		SetSort(buildListSort(opts)).
		SetSkip(int64(opts.Page-1) * int64(opts.Limit)).
		SetLimit(int64(opts.Limit))

	cursor, err := s.tasks.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar tarefas: %w", err)
	}
	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("falha ao decodificar tarefas: %w", err)
	}

	total, err := s.tasks.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("falha ao contar tarefas: %w", err)
	}

	stats, err := s.ownerStats(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Tasks:      tasks,
		Pagination: models.NewPagination(opts.Page, opts.Limit, total),
		Stats:      stats,
	}, nil
}

// Get fetches one task by id, scoped to the owner. Unknown ids and other
// owners' tasks both come back as ErrTaskNotFound.
func (s *TaskService) Get(ctx context.Context, userID primitive.ObjectID, id string) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidTaskID
	}

	var task models.Task
	err = s.tasks.FindOne(ctx, bson.M{"_id": oid, "user": userID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("falha ao buscar tarefa: %w", err)
	}
	return &task, nil
}

func validateTaskFields(title, description *string, category, priority *string, tags *[]string) []FieldError {
	var fields []FieldError
	if title != nil {
		if n := len([]rune(*title)); n < 1 || n > models.MaxTitleLen {
			fields = append(fields, FieldError{Field: "title", Message: "Título é obrigatório e deve ter no máximo 200 caracteres"})
		}
	}
	if description != nil && len([]rune(*description)) > models.MaxDescriptionLen {
		fields = append(fields, FieldError{Field: "description", Message: "Descrição deve ter no máximo 1000 caracteres"})
	}
	if category != nil && *category != "" && !models.ValidCategory(*category) {
		fields = append(fields, FieldError{Field: "category", Message: "Categoria inválida"})
	}
	if priority != nil && *priority != "" && !models.ValidPriority(*priority) {
		fields = append(fields, FieldError{Field: "priority", Message: "Prioridade inválida"})
	}
	if tags != nil {
		for _, tag := range *tags {
			if len([]rune(tag)) > models.MaxTagLen {
				fields = append(fields, FieldError{Field: "tags", Message: "Cada tag deve ter no máximo 30 caracteres"})
				break
			}
		}
	}
	return fields
}

// newTaskFromRequest validates the payload and builds the task to insert,
// filling in the category and priority defaults when they were omitted. The
// owner comes from the authenticated context, never from the payload.
func newTaskFromRequest(userID primitive.ObjectID, req models.CreateTaskRequest, now time.Time) (*models.Task, error) {
	fields := validateTaskFields(&req.Title, &req.Description, &req.Category, &req.Priority, &req.Tags)
	if err := validationError(fields); err != nil {
		return nil, err
	}
	if req.DueDate != nil && !req.DueDate.After(now) {
		return nil, ErrInvalidDueDate
	}

	task := &models.Task{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		UserID:      userID,
		Subtasks:    []models.Subtask{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Category == "" {
		task.Category = models.DefaultCategory
	}
	if task.Priority == "" {
		task.Priority = models.DefaultPriority
	}
	if req.Reminder != nil {
		task.Reminder = *req.Reminder
	}
	return task, nil
}

// Create inserts a new task for the owner. A due date, when present, must be
// strictly in the future.
func (s *TaskService) Create(ctx context.Context, userID primitive.ObjectID, req models.CreateTaskRequest) (*models.Task, error) {
	task, err := newTaskFromRequest(userID, req, time.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.tasks.InsertOne(ctx, task); err != nil {
		return nil, fmt.Errorf("falha ao criar tarefa: %w", err)
	}

	s.log.Infow("tarefa criada", "taskID", task.ID.Hex(), "userID", userID.Hex())
	return task, nil
}

// applyTaskUpdate merges the supplied fields into the task and runs the
// completion transition. Kept separate from persistence so the rules are
// applied explicitly rather than by a storage hook.
func applyTaskUpdate(task *models.Task, req models.UpdateTaskRequest, now time.Time) error {
	fields := validateTaskFields(req.Title, req.Description, req.Category, req.Priority, req.Tags)
	if err := validationError(fields); err != nil {
		return err
	}
	if req.DueDate != nil && !req.DueDate.After(now) {
		return ErrInvalidDueDate
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Category != nil && *req.Category != "" {
		task.Category = *req.Category
	}
	if req.Priority != nil && *req.Priority != "" {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
	if req.Reminder != nil {
		task.Reminder = *req.Reminder
	}
	if req.Completed != nil {
		task.SetCompleted(*req.Completed, now)
	}
	task.UpdatedAt = now
	return nil
}

// Update applies a partial update to an owned task. Writes replace the whole
// document; concurrent updates resolve last-writer-wins.
func (s *TaskService) Update(ctx context.Context, userID primitive.ObjectID, id string, req models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := applyTaskUpdate(task, req, time.Now()); err != nil {
		return nil, err
	}

	_, err = s.tasks.ReplaceOne(ctx, bson.M{"_id": task.ID, "user": userID}, task)
	if err != nil {
		return nil, fmt.Errorf("falha ao atualizar tarefa: %w", err)
	}
	return task, nil
}

// Delete removes an owned task permanently.
func (s *TaskService) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidTaskID
	}

	res, err := s.tasks.DeleteOne(ctx, bson.M{"_id": oid, "user": userID})
	if err != nil {
		return fmt.Errorf("falha ao deletar tarefa: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrTaskNotFound
	}

	s.log.Infow("tarefa deletada", "taskID", id, "userID", userID.Hex())
	return nil
}

// AddSubtask appends a pending subtask to an owned task.
func (s *TaskService) AddSubtask(ctx context.Context, userID primitive.ObjectID, id, title string) (*models.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidTaskID
	}
	if n := len([]rune(title)); n < 1 || n > models.MaxSubtaskLen {
		return nil, validationError([]FieldError{{
			Field:   "title",
			Message: "Título da subtarefa é obrigatório e deve ter no máximo 100 caracteres",
		}})
	}

	subtask := models.Subtask{ID: primitive.NewObjectID(), Title: title}

	var task models.Task
	err = s.tasks.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user": userID},
		bson.M{
			"$push": bson.M{"subtasks": subtask},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("falha ao adicionar subtarefa: %w", err)
	}
	return &task, nil
}

// ListAll returns every task of the owner, oldest first. Used by the data
// export.
func (s *TaskService) ListAll(ctx context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	cursor, err := s.tasks.Find(ctx, bson.M{"user": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar tarefas: %w", err)
	}
	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("falha ao decodificar tarefas: %w", err)
	}
	return tasks, nil
}

// ownerStats aggregates total/completed/pending/overdue over the owner's
// entire collection.
func (s *TaskService) ownerStats(ctx context.Context, userID primitive.ObjectID, now time.Time) (models.TaskStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"total":     bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{"$completed", 1, 0}}},
			"pending":   bson.M{"$sum": bson.M{"$cond": bson.A{"$completed", 0, 1}}},
			"overdue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$ne": bson.A{"$dueDate", nil}},
					bson.M{"$lt": bson.A{"$dueDate", now}},
					bson.M{"$eq": bson.A{"$completed", false}},
				}}, 1, 0,
			}}},
		}}},
	}

	cursor, err := s.tasks.Aggregate(ctx, pipeline)
	if err != nil {
		return models.TaskStats{}, fmt.Errorf("falha ao calcular estatísticas: %w", err)
	}
	var results []models.TaskStats
	if err := cursor.All(ctx, &results); err != nil {
		return models.TaskStats{}, fmt.Errorf("falha ao decodificar estatísticas: %w", err)
	}
	if len(results) == 0 {
		return models.TaskStats{}, nil
	}
	return results[0], nil
}

// DashboardStats computes the dashboard aggregates: general counters,
// per-category and per-priority breakdowns, and the creation histogram for
// the current Sunday-started week. Week boundaries come from the server
// clock at call time.
func (s *TaskService) DashboardStats(ctx context.Context, userID primitive.ObjectID) (*models.DashboardStats, error) {
	now := time.Now()

	general, err := s.ownerStats(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	categories := []models.CategoryStat{}
	catPipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$category",
			"total":     bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{"$completed", 1, 0}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}
	cursor, err := s.tasks.Aggregate(ctx, catPipeline)
	if err != nil {
		return nil, fmt.Errorf("falha ao agrupar por categoria: %w", err)
	}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("falha ao decodificar categorias: %w", err)
	}

	priorities := []models.PriorityStat{}
	priPipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$priority",
			"total":     bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{"$completed", 1, 0}}},
		}}},
	}
	cursor, err = s.tasks.Aggregate(ctx, priPipeline)
	if err != nil {
		return nil, fmt.Errorf("falha ao agrupar por prioridade: %w", err)
	}
	if err := cursor.All(ctx, &priorities); err != nil {
		return nil, fmt.Errorf("falha ao decodificar prioridades: %w", err)
	}

	weekStart, weekEnd := weekRange(now)
	weekly := []models.WeeklyStat{}
	weekPipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user":      userID,
			"createdAt": bson.M{"$gte": weekStart, "$lt": weekEnd},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dayOfWeek": "$createdAt"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err = s.tasks.Aggregate(ctx, weekPipeline)
	if err != nil {
		return nil, fmt.Errorf("falha ao calcular tarefas da semana: %w", err)
	}
	if err := cursor.All(ctx, &weekly); err != nil {
		return nil, fmt.Errorf("falha ao decodificar tarefas da semana: %w", err)
	}

	return &models.DashboardStats{
		General:    general,
		Categories: categories,
		Priorities: priorities,
		Weekly:     weekly,
	}, nil
}
