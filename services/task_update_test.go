package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/LeandroSimplicio/To-do-list/models"
)

func strPtr(s string) *string { return &s }

func TestApplyTaskUpdate(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("applies only supplied fields", func(t *testing.T) {
		task := models.Task{Title: "antiga", Description: "descrição", Category: "Pessoal", Priority: "baixa"}
		err := applyTaskUpdate(&task, models.UpdateTaskRequest{Title: strPtr("nova")}, now)
		if err != nil {
			t.Fatalf("applyTaskUpdate() error = %v", err)
		}
		if task.Title != "nova" {
			t.Errorf("Title = %q, want %q", task.Title, "nova")
		}
		if task.Description != "descrição" || task.Category != "Pessoal" || task.Priority != "baixa" {
			t.Errorf("untouched fields changed: %+v", task)
		}
		if !task.UpdatedAt.Equal(now) {
			t.Errorf("UpdatedAt = %v, want %v", task.UpdatedAt, now)
		}
	})

	t.Run("past due date rejected", func(t *testing.T) {
		yesterday := now.Add(-24 * time.Hour)
		task := models.Task{Title: "t"}
		err := applyTaskUpdate(&task, models.UpdateTaskRequest{DueDate: &yesterday}, now)
		if !errors.Is(err, ErrInvalidDueDate) {
			t.Errorf("applyTaskUpdate() error = %v, want ErrInvalidDueDate", err)
		}
	})

	t.Run("future due date accepted", func(t *testing.T) {
		tomorrow := now.Add(24 * time.Hour)
		task := models.Task{Title: "t"}
		if err := applyTaskUpdate(&task, models.UpdateTaskRequest{DueDate: &tomorrow}, now); err != nil {
			t.Fatalf("applyTaskUpdate() error = %v", err)
		}
		if task.DueDate == nil || !task.DueDate.Equal(tomorrow) {
			t.Errorf("DueDate = %v, want %v", task.DueDate, tomorrow)
		}
	})

	t.Run("completing sets completedAt", func(t *testing.T) {
		task := models.Task{Title: "t"}
		if err := applyTaskUpdate(&task, models.UpdateTaskRequest{Completed: boolPtr(true)}, now); err != nil {
			t.Fatalf("applyTaskUpdate() error = %v", err)
		}
		if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
			t.Errorf("CompletedAt = %v, want %v", task.CompletedAt, now)
		}
	})

	t.Run("reopening clears completedAt", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		task := models.Task{Title: "t", Completed: true, CompletedAt: &earlier}
		if err := applyTaskUpdate(&task, models.UpdateTaskRequest{Completed: boolPtr(false)}, now); err != nil {
			t.Fatalf("applyTaskUpdate() error = %v", err)
		}
		if task.CompletedAt != nil {
			t.Errorf("CompletedAt = %v, want nil", task.CompletedAt)
		}
	})

	t.Run("oversized title rejected", func(t *testing.T) {
		long := strings.Repeat("a", models.MaxTitleLen+1)
		task := models.Task{Title: "t"}
		err := applyTaskUpdate(&task, models.UpdateTaskRequest{Title: &long}, now)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("applyTaskUpdate() error = %v, want ValidationError", err)
		}
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		task := models.Task{Title: "t"}
		err := applyTaskUpdate(&task, models.UpdateTaskRequest{Priority: strPtr("extrema")}, now)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("applyTaskUpdate() error = %v, want ValidationError", err)
		}
	})
}

func TestValidateTaskFields(t *testing.T) {
	title := strings.Repeat("a", models.MaxTitleLen)
	desc := strings.Repeat("b", models.MaxDescriptionLen)
	tags := []string{strings.Repeat("c", models.MaxTagLen)}
	if fields := validateTaskFields(&title, &desc, strPtr("Geral"), strPtr("média"), &tags); len(fields) != 0 {
		t.Errorf("boundary values rejected: %+v", fields)
	}

	empty := ""
	longTag := []string{strings.Repeat("c", models.MaxTagLen+1)}
	fields := validateTaskFields(&empty, nil, strPtr("Outra"), nil, &longTag)
	seen := map[string]bool{}
	for _, f := range fields {
		seen[f.Field] = true
	}
	for _, want := range []string{"title", "category", "tags"} {
		if !seen[want] {
			t.Errorf("violation for %q not reported: %+v", want, fields)
		}
	}
}
