package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/models"
	"github.com/LeandroSimplicio/To-do-list/utils"
)

// UserService covers the account-management surface beyond authentication:
// profile with task counters, preferences, avatar, deactivation and export.
type UserService struct {
	users  *mongo.Collection
	tasks  *TaskService
	hasher *utils.PasswordHasher
	log    *zap.SugaredLogger
}

// NewUserService creates a UserService backed by the users collection and
// the task query engine.
func NewUserService(db *mongo.Database, tasks *TaskService, log *zap.SugaredLogger) *UserService {
	return &UserService{
		users:  db.Collection("users"),
		tasks:  tasks,
		hasher: utils.NewPasswordHasher(),
		log:    log,
	}
}

// ProfileStats counts the user's tasks for the profile view.
func (s *UserService) ProfileStats(ctx context.Context, user *models.User) (models.ProfileStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": user.ID}}},
		{{Key: "$group", Value: bson.M{
			"_id":            nil,
			"totalTasks":     bson.M{"$sum": 1},
			"completedTasks": bson.M{"$sum": bson.M{"$cond": bson.A{"$completed", 1, 0}}},
			"pendingTasks":   bson.M{"$sum": bson.M{"$cond": bson.A{"$completed", 0, 1}}},
		}}},
	}

	cursor, err := s.tasks.tasks.Aggregate(ctx, pipeline)
	if err != nil {
		return models.ProfileStats{}, fmt.Errorf("falha ao calcular estatísticas do perfil: %w", err)
	}
	var results []models.ProfileStats
	if err := cursor.All(ctx, &results); err != nil {
		return models.ProfileStats{}, fmt.Errorf("falha ao decodificar estatísticas do perfil: %w", err)
	}
	if len(results) == 0 {
		return models.ProfileStats{}, nil
	}
	return results[0], nil
}

// UpdatePreferences merges the supplied preference fields into the stored
// document.
func (s *UserService) UpdatePreferences(ctx context.Context, user *models.User, patch models.PreferencesPatch) (*models.Preferences, error) {
	var fields []FieldError
	update := bson.M{"updatedAt": time.Now()}

	if patch.Theme != nil {
		if *patch.Theme != "light" && *patch.Theme != "dark" {
			fields = append(fields, FieldError{Field: "theme", Message: "Tema deve ser light ou dark"})
		} else {
			update["preferences.theme"] = *patch.Theme
		}
	}
	if patch.DefaultCategory != nil {
		if !models.ValidCategory(*patch.DefaultCategory) {
			fields = append(fields, FieldError{Field: "defaultCategory", Message: "Categoria padrão inválida"})
		} else {
			update["preferences.defaultCategory"] = *patch.DefaultCategory
		}
	}
	if patch.Notifications != nil {
		update["preferences.notifications"] = *patch.Notifications
	}
	if err := validationError(fields); err != nil {
		return nil, err
	}

	var updated models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("falha ao atualizar preferências: %w", err)
	}
	return &updated.Preferences, nil
}

// UpdateAvatar stores a new avatar URL.
func (s *UserService) UpdateAvatar(ctx context.Context, user *models.User, avatar string) (string, error) {
	parsed, err := url.ParseRequestURI(avatar)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", validationError([]FieldError{{Field: "avatar", Message: "Avatar deve ser uma URL válida"}})
	}

	_, err = s.users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"avatar": avatar, "updatedAt": time.Now()}},
	)
	if err != nil {
		return "", fmt.Errorf("falha ao atualizar avatar: %w", err)
	}
	return avatar, nil
}

// DeactivateAccount flips the account inactive after confirming the
// password. Tasks are kept; outstanding tokens are rejected downstream at
// the account-status check.
func (s *UserService) DeactivateAccount(ctx context.Context, user *models.User, password string) error {
	if !s.hasher.Verify(password, user.Password) {
		return ErrWrongPassword
	}

	_, err := s.users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("falha ao desativar conta: %w", err)
	}

	s.log.Infow("conta desativada", "userID", user.ID.Hex())
	return nil
}

// Export snapshots the account and all of its tasks.
func (s *UserService) Export(ctx context.Context, user *models.User) (*models.ExportData, error) {
	tasks, err := s.tasks.ListAll(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &models.ExportData{
		User: models.ExportUser{
			Name:        user.Name,
			Email:       user.Email,
			Preferences: user.Preferences,
			CreatedAt:   user.CreatedAt,
		},
		Tasks:      models.NewTaskResponses(tasks, now),
		ExportedAt: now,
	}, nil
}
