package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  Pagination
	}{
		{
			name: "25 tasks, page 3 of 10",
			page: 3, limit: 10, total: 25,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalTasks: 25, HasNext: false, HasPrev: true},
		},
		{
			name: "25 tasks, page 1 of 10",
			page: 1, limit: 10, total: 25,
			want: Pagination{CurrentPage: 1, TotalPages: 3, TotalTasks: 25, HasNext: true, HasPrev: false},
		},
		{
			name: "exact multiple",
			page: 2, limit: 10, total: 20,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalTasks: 20, HasNext: false, HasPrev: true},
		},
		{
			name: "empty collection",
			page: 1, limit: 10, total: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalTasks: 0, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPagination(tt.page, tt.limit, tt.total); got != tt.want {
				t.Errorf("NewPagination() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewTaskResponse(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)

	task := Task{
		ID:       primitive.NewObjectID(),
		Title:    "Revisar relatório",
		Category: "Trabalho",
		Priority: "alta",
		DueDate:  &past,
		UserID:   primitive.NewObjectID(),
		Subtasks: []Subtask{{Title: "rascunho", Completed: true}, {Title: "revisão"}},
	}

	resp := NewTaskResponse(task, now)

	if !resp.IsOverdue {
		t.Error("IsOverdue = false, want true")
	}
	if resp.Progress != (SubtaskProgress{Completed: 1, Total: 2, Percentage: 50}) {
		t.Errorf("Progress = %+v", resp.Progress)
	}
	if resp.DaysUntilDue == nil || *resp.DaysUntilDue != -2 {
		t.Errorf("DaysUntilDue = %v, want -2", resp.DaysUntilDue)
	}
	if resp.Tags == nil {
		t.Error("Tags serialized as nil, want empty slice")
	}
}

func TestUserResponse_NeverCarriesPasswordHash(t *testing.T) {
	user := User{
		ID:       primitive.NewObjectID(),
		Name:     "Leandro",
		Email:    "leandro@example.com",
		Password: "$2a$12$somethingsecret",
		IsActive: true,
	}

	raw, err := json.Marshal(user.PublicProfile())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), "somethingsecret") || strings.Contains(string(raw), "password") {
		t.Errorf("public profile leaked the password hash: %s", raw)
	}

	// The stored model also hides the hash when serialized directly.
	raw, err = json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), "somethingsecret") {
		t.Errorf("user model leaked the password hash: %s", raw)
	}
}
