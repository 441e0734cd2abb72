package models

import (
	"testing"
	"time"
)

func TestTask_SetCompleted(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("false to true sets completedAt", func(t *testing.T) {
		task := Task{}
		task.SetCompleted(true, now)
		if !task.Completed {
			t.Error("Completed = false, want true")
		}
		if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
			t.Errorf("CompletedAt = %v, want %v", task.CompletedAt, now)
		}
	})

	t.Run("true to false clears completedAt", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		task := Task{Completed: true, CompletedAt: &earlier}
		task.SetCompleted(false, now)
		if task.Completed {
			t.Error("Completed = true, want false")
		}
		if task.CompletedAt != nil {
			t.Errorf("CompletedAt = %v, want nil", task.CompletedAt)
		}
	})

	t.Run("re-completing keeps original timestamp", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		task := Task{Completed: true, CompletedAt: &earlier}
		task.SetCompleted(true, now)
		if task.CompletedAt == nil || !task.CompletedAt.Equal(earlier) {
			t.Errorf("CompletedAt = %v, want %v", task.CompletedAt, earlier)
		}
	})
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{name: "no due date", task: Task{}, want: false},
		{name: "due in the past, pending", task: Task{DueDate: &past}, want: true},
		{name: "due in the past, completed", task: Task{DueDate: &past, Completed: true}, want: false},
		{name: "due in the future", task: Task{DueDate: &future}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_Progress(t *testing.T) {
	tests := []struct {
		name     string
		subtasks []Subtask
		want     SubtaskProgress
	}{
		{name: "no subtasks", subtasks: nil, want: SubtaskProgress{}},
		{
			name:     "one of three done",
			subtasks: []Subtask{{Completed: true}, {}, {}},
			want:     SubtaskProgress{Completed: 1, Total: 3, Percentage: 33},
		},
		{
			name:     "two of three done",
			subtasks: []Subtask{{Completed: true}, {Completed: true}, {}},
			want:     SubtaskProgress{Completed: 2, Total: 3, Percentage: 67},
		},
		{
			name:     "all done",
			subtasks: []Subtask{{Completed: true}, {Completed: true}},
			want:     SubtaskProgress{Completed: 2, Total: 2, Percentage: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Subtasks: tt.subtasks}
			if got := task.Progress(); got != tt.want {
				t.Errorf("Progress() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTask_DaysUntilDue(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no due date", func(t *testing.T) {
		task := Task{}
		if got := task.DaysUntilDue(now); got != nil {
			t.Errorf("DaysUntilDue() = %v, want nil", *got)
		}
	})

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{name: "tomorrow", due: now.Add(36 * time.Hour), want: 2},
		{name: "in exactly one day", due: now.Add(24 * time.Hour), want: 1},
		{name: "a few hours ahead", due: now.Add(6 * time.Hour), want: 1},
		{name: "yesterday", due: now.Add(-24 * time.Hour), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := tt.due
			task := Task{DueDate: &due}
			got := task.DaysUntilDue(now)
			if got == nil || *got != tt.want {
				t.Errorf("DaysUntilDue() = %v, want %d", got, tt.want)
			}
		})
	}
}

func TestValidCategoryAndPriority(t *testing.T) {
	if !ValidCategory("Geral") || !ValidCategory("Trabalho") {
		t.Error("fixed categories rejected")
	}
	if ValidCategory("Inexistente") || ValidCategory("") {
		t.Error("unknown category accepted")
	}
	if !ValidPriority("média") || !ValidPriority("urgente") {
		t.Error("fixed priorities rejected")
	}
	if ValidPriority("media") || ValidPriority("") {
		t.Error("unknown priority accepted")
	}
}
