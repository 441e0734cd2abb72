package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories are the fixed task categories.
var Categories = []string{
	"Trabalho", "Pessoal", "Estudos", "Saúde", "Compras", "Lazer", "Família", "Geral",
}

// Priorities are the accepted task priorities.
var Priorities = []string{"baixa", "média", "alta", "urgente"}

const (
	DefaultCategory = "Geral"
	DefaultPriority = "média"

	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxTagLen         = 30
	MaxSubtaskLen     = 100
)

// ValidCategory reports whether s is one of the fixed categories.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if s == c {
			return true
		}
	}
	return false
}

// ValidPriority reports whether s is an accepted priority.
func ValidPriority(s string) bool {
	for _, p := range Priorities {
		if s == p {
			return true
		}
	}
	return false
}

// Subtask is a nested checklist item inside a task.
type Subtask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Completed   bool               `bson:"completed" json:"completed"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// Reminder is an optional notification marker on a task.
type Reminder struct {
	Enabled bool       `bson:"enabled" json:"enabled"`
	Date    *time.Time `bson:"date,omitempty" json:"date,omitempty"`
}

// Task is a stored to-do item. UserID references the owning account and is
// immutable after creation.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Completed   bool               `bson:"completed" json:"completed"`
	Category    string             `bson:"category" json:"category"`
	Priority    string             `bson:"priority" json:"priority"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	Reminder    Reminder           `bson:"reminder" json:"reminder"`
	Subtasks    []Subtask          `bson:"subtasks" json:"subtasks"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetCompleted applies the completion state transition: marking a task done
// records when it happened, reopening it clears the record. Re-marking an
// already completed task keeps the original timestamp.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	if completed {
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
		t.Completed = true
		return
	}
	t.Completed = false
	t.CompletedAt = nil
}

// IsOverdue reports whether the task has a due date in the past and is not
// completed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && now.After(*t.DueDate)
}

// SubtaskProgress summarizes how many subtasks are done.
type SubtaskProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Progress computes the subtask completion summary.
func (t *Task) Progress() SubtaskProgress {
	if len(t.Subtasks) == 0 {
		return SubtaskProgress{}
	}
	completed := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			completed++
		}
	}
	total := len(t.Subtasks)
	return SubtaskProgress{
		Completed:  completed,
		Total:      total,
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
	}
}

// DaysUntilDue returns the number of whole days until the due date, rounded
// up, or nil when the task has no due date. Past due dates yield negative
// values.
func (t *Task) DaysUntilDue(now time.Time) *int {
	if t.DueDate == nil {
		return nil
	}
	days := int(math.Ceil(t.DueDate.Sub(now).Hours() / 24))
	return &days
}
