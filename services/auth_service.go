package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/LeandroSimplicio/To-do-list/models"
	"github.com/LeandroSimplicio/To-do-list/utils"
)

// AuthService owns the account and token lifecycle: registration, login,
// token validation and profile maintenance.
type AuthService struct {
	users  *mongo.Collection
	hasher *utils.PasswordHasher
	tokens *utils.TokenManager
	log    *zap.SugaredLogger
}

// NewAuthService creates an AuthService backed by the users collection.
func NewAuthService(db *mongo.Database, tokens *utils.TokenManager, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		users:  db.Collection("users"),
		hasher: utils.NewPasswordHasher(),
		tokens: tokens,
		log:    log,
	}
}

func validateRegistration(req models.RegisterRequest) error {
	var fields []FieldError
	if n := len([]rune(strings.TrimSpace(req.Name))); n < 2 || n > 50 {
		fields = append(fields, FieldError{Field: "name", Message: "Nome deve ter entre 2 e 50 caracteres"})
	}
	if !utils.ValidEmail(req.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Email inválido"})
	}
	if !utils.ValidPassword(req.Password) {
		fields = append(fields, FieldError{
			Field:   "password",
			Message: "Senha deve ter pelo menos 6 caracteres, com 1 letra minúscula, 1 maiúscula e 1 número",
		})
	}
	return validationError(fields)
}

// Register creates an account, hashes its password and issues the first
// token. The duplicate-email check runs before the insert and again on the
// unique-index violation, since a concurrent registration can slip between
// the two.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, *models.User, error) {
	if err := validateRegistration(req); err != nil {
		return "", nil, err
	}

	email := utils.NormalizeEmail(req.Email)

	count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return "", nil, fmt.Errorf("falha ao verificar email: %w", err)
	}
	if count > 0 {
		return "", nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", nil, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:          primitive.NewObjectID(),
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Password:    hash,
		IsActive:    true,
		Preferences: models.DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, fmt.Errorf("falha ao criar usuário: %w", err)
	}

	token, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return "", nil, fmt.Errorf("falha ao gerar token: %w", err)
	}

	s.log.Infow("usuário registrado", "userID", user.ID.Hex(), "email", user.Email)
	return token, user, nil
}

// Login verifies the credentials and issues a fresh token. Unknown email,
// deactivated account and password mismatch all return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	email := utils.NormalizeEmail(req.Email)

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(req.Password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	_, err = s.users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"lastLogin": now, "updatedAt": now}},
	)
	if err != nil {
		return "", nil, fmt.Errorf("falha ao atualizar último login: %w", err)
	}
	user.LastLogin = &now

	token, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return "", nil, fmt.Errorf("falha ao gerar token: %w", err)
	}

	s.log.Infow("login realizado", "userID", user.ID.Hex())
	return token, &user, nil
}

// Authenticate resolves a bearer token to its account. Tokens of deactivated
// accounts stay cryptographically valid but are rejected here, at the
// account-status check.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		if errors.Is(err, utils.ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	oid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}
	return &user, nil
}

// ChangePassword swaps the account password after checking the current one.
// The new password must satisfy the registration strength rule.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, req models.ChangePasswordRequest) error {
	if !s.hasher.Verify(req.CurrentPassword, user.Password) {
		return ErrWrongPassword
	}
	if !utils.ValidPassword(req.NewPassword) {
		return validationError([]FieldError{{
			Field:   "newPassword",
			Message: "Nova senha deve ter pelo menos 6 caracteres, com 1 letra minúscula, 1 maiúscula e 1 número",
		}})
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}

	_, err = s.users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar senha: %w", err)
	}

	s.log.Infow("senha alterada", "userID", user.ID.Hex())
	return nil
}

// UpdateProfile applies a partial profile update. An email change re-checks
// uniqueness; preference fields are merged, not replaced wholesale.
func (s *AuthService) UpdateProfile(ctx context.Context, user *models.User, req models.UpdateProfileRequest) (*models.User, error) {
	var fields []FieldError
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if n := len([]rune(trimmed)); n < 2 || n > 50 {
			fields = append(fields, FieldError{Field: "name", Message: "Nome deve ter entre 2 e 50 caracteres"})
		}
		req.Name = &trimmed
	}
	if req.Email != nil && !utils.ValidEmail(*req.Email) {
		fields = append(fields, FieldError{Field: "email", Message: "Email inválido"})
	}
	if err := validationError(fields); err != nil {
		return nil, err
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Email != nil {
		email := utils.NormalizeEmail(*req.Email)
		if email != user.Email {
			count, err := s.users.CountDocuments(ctx, bson.M{"email": email})
			if err != nil {
				return nil, fmt.Errorf("falha ao verificar email: %w", err)
			}
			if count > 0 {
				return nil, ErrEmailTaken
			}
		}
		update["email"] = email
	}
	if req.Preferences != nil {
		if req.Preferences.Theme != nil {
			if *req.Preferences.Theme != "light" && *req.Preferences.Theme != "dark" {
				return nil, validationError([]FieldError{{Field: "preferences.theme", Message: "Tema deve ser light ou dark"}})
			}
			update["preferences.theme"] = *req.Preferences.Theme
		}
		if req.Preferences.DefaultCategory != nil {
			if !models.ValidCategory(*req.Preferences.DefaultCategory) {
				return nil, validationError([]FieldError{{Field: "preferences.defaultCategory", Message: "Categoria padrão inválida"}})
			}
			update["preferences.defaultCategory"] = *req.Preferences.DefaultCategory
		}
		if req.Preferences.Notifications != nil {
			update["preferences.notifications"] = *req.Preferences.Notifications
		}
	}

	var updated models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("falha ao atualizar perfil: %w", err)
	}

	return &updated, nil
}
