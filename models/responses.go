package models

import "time"

// UserResponse is the public view of an account. It never carries the
// password hash.
type UserResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences"`
	Avatar      string      `json:"avatar,omitempty"`
	LastLogin   *time.Time  `json:"lastLogin,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// TaskResponse is a task plus its derived attributes, computed at
// serialization time and never persisted.
type TaskResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Completed    bool            `json:"completed"`
	Category     string          `json:"category"`
	Priority     string          `json:"priority"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	Tags         []string        `json:"tags"`
	User         string          `json:"user"`
	Reminder     Reminder        `json:"reminder"`
	Subtasks     []Subtask       `json:"subtasks"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
	IsOverdue    bool            `json:"isOverdue"`
	Progress     SubtaskProgress `json:"subtaskProgress"`
	DaysUntilDue *int            `json:"daysUntilDue"`
}

// NewTaskResponse builds the serialized view of a task as of now.
func NewTaskResponse(t Task, now time.Time) TaskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	subtasks := t.Subtasks
	if subtasks == nil {
		subtasks = []Subtask{}
	}
	return TaskResponse{
		ID:           t.ID.Hex(),
		Title:        t.Title,
		Description:  t.Description,
		Completed:    t.Completed,
		Category:     t.Category,
		Priority:     t.Priority,
		DueDate:      t.DueDate,
		CompletedAt:  t.CompletedAt,
		Tags:         tags,
		User:         t.UserID.Hex(),
		Reminder:     t.Reminder,
		Subtasks:     subtasks,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		IsOverdue:    t.IsOverdue(now),
		Progress:     t.Progress(),
		DaysUntilDue: t.DaysUntilDue(now),
	}
}

// NewTaskResponses maps a page of tasks to their serialized views.
func NewTaskResponses(tasks []Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t, now))
	}
	return out
}

// Pagination is the page metadata returned with task listings.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalTasks  int64 `json:"totalTasks"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes page metadata for a 1-indexed page of the given
// size over total items.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	skip := int64(page-1) * int64(limit)
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalTasks:  total,
		HasNext:     skip+int64(limit) < total,
		HasPrev:     page > 1,
	}
}

// TaskStats are whole-collection counters for one owner.
type TaskStats struct {
	Total     int64 `bson:"total" json:"total"`
	Completed int64 `bson:"completed" json:"completed"`
	Pending   int64 `bson:"pending" json:"pending"`
	Overdue   int64 `bson:"overdue" json:"overdue"`
}

// CategoryStat counts tasks of one category.
type CategoryStat struct {
	Category  string `bson:"_id" json:"category"`
	Total     int64  `bson:"total" json:"total"`
	Completed int64  `bson:"completed" json:"completed"`
}

// PriorityStat counts tasks of one priority.
type PriorityStat struct {
	Priority  string `bson:"_id" json:"priority"`
	Total     int64  `bson:"total" json:"total"`
	Completed int64  `bson:"completed" json:"completed"`
}

// WeeklyStat counts tasks created on one day of the current week. Day
// follows the MongoDB $dayOfWeek convention: 1 = Sunday through 7 = Saturday.
type WeeklyStat struct {
	Day   int   `bson:"_id" json:"day"`
	Count int64 `bson:"count" json:"count"`
}

// DashboardStats is the payload of GET /api/tasks/stats/dashboard.
type DashboardStats struct {
	General    TaskStats      `json:"general"`
	Categories []CategoryStat `json:"categories"`
	Priorities []PriorityStat `json:"priorities"`
	Weekly     []WeeklyStat   `json:"weekly"`
}

// TaskListResponse is the payload of GET /api/tasks.
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
	Stats      TaskStats      `json:"stats"`
}

// ProfileStats are the counters shown on the user profile.
type ProfileStats struct {
	TotalTasks     int64 `bson:"totalTasks" json:"totalTasks"`
	CompletedTasks int64 `bson:"completedTasks" json:"completedTasks"`
	PendingTasks   int64 `bson:"pendingTasks" json:"pendingTasks"`
}

// ExportData is the payload of GET /api/users/export.
type ExportData struct {
	User       ExportUser     `json:"user"`
	Tasks      []TaskResponse `json:"tasks"`
	ExportedAt time.Time      `json:"exportedAt"`
}

// ExportUser is the account snapshot included in an export.
type ExportUser struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
}
