package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildListFilter(t *testing.T) {
	userID := primitive.NewObjectID()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("owner scope always present", func(t *testing.T) {
		filter := buildListFilter(userID, ListOptions{}, now)
		if filter["user"] != userID {
			t.Errorf("filter[user] = %v, want %v", filter["user"], userID)
		}
		if len(filter) != 1 {
			t.Errorf("unexpected extra filters: %v", filter)
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		filter := buildListFilter(userID, ListOptions{
			Category:  "Trabalho",
			Completed: boolPtr(true),
			Priority:  "alta",
		}, now)
		if filter["category"] != "Trabalho" {
			t.Errorf("filter[category] = %v", filter["category"])
		}
		if filter["completed"] != true {
			t.Errorf("filter[completed] = %v", filter["completed"])
		}
		if filter["priority"] != "alta" {
			t.Errorf("filter[priority] = %v", filter["priority"])
		}
	})

	t.Run("search is OR across title, description and tags", func(t *testing.T) {
		filter := buildListFilter(userID, ListOptions{Search: "mercado"}, now)
		or, ok := filter["$or"].(bson.A)
		if !ok {
			t.Fatalf("filter[$or] missing: %v", filter)
		}
		if len(or) != 3 {
			t.Fatalf("len($or) = %d, want 3", len(or))
		}
		targets := map[string]bool{}
		for _, clause := range or {
			m := clause.(bson.M)
			for field, v := range m {
				targets[field] = true
				re, ok := v.(primitive.Regex)
				if !ok {
					t.Fatalf("clause %q is not a regex: %v", field, v)
				}
				if re.Options != "i" {
					t.Errorf("regex on %q is case sensitive", field)
				}
			}
		}
		for _, field := range []string{"title", "description", "tags"} {
			if !targets[field] {
				t.Errorf("search does not cover %q", field)
			}
		}
	})

	t.Run("search metacharacters are quoted", func(t *testing.T) {
		filter := buildListFilter(userID, ListOptions{Search: "a+b"}, now)
		or := filter["$or"].(bson.A)
		re := or[0].(bson.M)["title"].(primitive.Regex)
		if re.Pattern == "a+b" {
			t.Error("search pattern not quoted")
		}
	})

	t.Run("overdue forces pending regardless of completed filter", func(t *testing.T) {
		filter := buildListFilter(userID, ListOptions{
			Overdue:   true,
			Completed: boolPtr(true),
		}, now)
		if filter["completed"] != false {
			t.Errorf("filter[completed] = %v, want false", filter["completed"])
		}
		due, ok := filter["dueDate"].(bson.M)
		if !ok {
			t.Fatalf("filter[dueDate] missing: %v", filter)
		}
		lt, ok := due["$lt"].(time.Time)
		if !ok || !lt.Equal(now) {
			t.Errorf("dueDate $lt = %v, want %v", due["$lt"], now)
		}
	})
}

func TestBuildListSort(t *testing.T) {
	tests := []struct {
		name string
		opts ListOptions
		want bson.D
	}{
		{
			name: "default is createdAt descending",
			opts: ListOptions{},
			want: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
		},
		{
			name: "explicit ascending with tiebreak",
			opts: ListOptions{SortBy: "dueDate", SortOrder: "asc"},
			want: bson.D{{Key: "dueDate", Value: 1}, {Key: "_id", Value: 1}},
		},
		{
			name: "explicit descending",
			opts: ListOptions{SortBy: "title", SortOrder: "desc"},
			want: bson.D{{Key: "title", Value: -1}, {Key: "_id", Value: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildListSort(tt.opts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildListSort() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateListOptions(t *testing.T) {
	valid := ListOptions{Page: 1, Limit: 10}
	if err := ValidateListOptions(valid); err != nil {
		t.Fatalf("ValidateListOptions(valid) = %v", err)
	}

	tests := []struct {
		name  string
		opts  ListOptions
		field string
	}{
		{name: "page zero", opts: ListOptions{Page: 0, Limit: 10}, field: "page"},
		{name: "limit above ceiling", opts: ListOptions{Page: 1, Limit: 101}, field: "limit"},
		{name: "unknown category", opts: ListOptions{Page: 1, Limit: 10, Category: "Outra"}, field: "category"},
		{name: "unknown priority", opts: ListOptions{Page: 1, Limit: 10, Priority: "extrema"}, field: "priority"},
		{name: "unsortable field", opts: ListOptions{Page: 1, Limit: 10, SortBy: "password"}, field: "sortBy"},
		{name: "bad sort order", opts: ListOptions{Page: 1, Limit: 10, SortOrder: "up"}, field: "sortOrder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateListOptions(tt.opts)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateListOptions() = %v, want ValidationError", err)
			}
			found := false
			for _, f := range verr.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("violation for %q not reported: %+v", tt.field, verr.Fields)
			}
		})
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid-week wednesday",
			now:       time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC), // Wednesday
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),   // previous Sunday
			wantEnd:   time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday is its own week start",
			now:       time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "saturday closes the week",
			now:       time.Date(2024, 3, 16, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekRange(tt.now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}
