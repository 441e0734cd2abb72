package models

import "time"

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the payload for POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PreferencesPatch carries a partial preferences update; nil fields are left
// untouched.
type PreferencesPatch struct {
	Theme           *string `json:"theme"`
	DefaultCategory *string `json:"defaultCategory"`
	Notifications   *bool   `json:"notifications"`
}

// UpdateProfileRequest is the payload for PUT /api/auth/profile.
type UpdateProfileRequest struct {
	Name        *string           `json:"name"`
	Email       *string           `json:"email"`
	Preferences *PreferencesPatch `json:"preferences"`
}

// CreateTaskRequest is the payload for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
	Reminder    *Reminder  `json:"reminder"`
}

// UpdateTaskRequest is the payload for PUT /api/tasks/:id. Only non-nil
// fields are applied.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        *[]string  `json:"tags"`
	Reminder    *Reminder  `json:"reminder"`
}

// AddSubtaskRequest is the payload for POST /api/tasks/:id/subtasks.
type AddSubtaskRequest struct {
	Title string `json:"title"`
}

// UpdateAvatarRequest is the payload for PUT /api/users/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// DeactivateAccountRequest is the payload for DELETE /api/users/account.
type DeactivateAccountRequest struct {
	Password string `json:"password"`
}
