package services

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/LeandroSimplicio/To-do-list/models"
)

const (
	maxPageSize      = 100
	defaultSortField = "createdAt"
)

// ListOptions are the parsed filters for a task listing.
type ListOptions struct {
	Page      int
	Limit     int
	Category  string
	Completed *bool
	Priority  string
	Overdue   bool
	Search    string
	SortBy    string
	SortOrder string
}

// sortableFields is the whitelist of single-field sort keys.
var sortableFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"dueDate":   true,
	"priority":  true,
	"title":     true,
	"completed": true,
}

// ValidateListOptions checks the filter values the same way the query
// parameters were validated upstream in the original API.
func ValidateListOptions(opts ListOptions) error {
	var fields []FieldError
	if opts.Page < 1 {
		fields = append(fields, FieldError{Field: "page", Message: "Página deve ser um número positivo"})
	}
	if opts.Limit < 1 || opts.Limit > maxPageSize {
		fields = append(fields, FieldError{Field: "limit", Message: "Limite deve ser entre 1 e 100"})
	}
	if opts.Category != "" && !models.ValidCategory(opts.Category) {
		fields = append(fields, FieldError{Field: "category", Message: "Categoria inválida"})
	}
	if opts.Priority != "" && !models.ValidPriority(opts.Priority) {
		fields = append(fields, FieldError{Field: "priority", Message: "Prioridade inválida"})
	}
	if opts.SortBy != "" && !sortableFields[opts.SortBy] {
		fields = append(fields, FieldError{Field: "sortBy", Message: "Campo de ordenação inválido"})
	}
	if opts.SortOrder != "" && opts.SortOrder != "asc" && opts.SortOrder != "desc" {
		fields = append(fields, FieldError{Field: "sortOrder", Message: "Ordem deve ser asc ou desc"})
	}
	return validationError(fields)
}

// buildListFilter translates ListOptions into the MongoDB filter document.
// All filters combine with AND; the free-text search is an OR across title,
// description and tags, matched as a case-insensitive substring. overdue=true
// forces completed=false and dueDate<now regardless of any explicit
// completed filter.
func buildListFilter(userID primitive.ObjectID, opts ListOptions, now time.Time) bson.M {
	filter := bson.M{"user": userID}

	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.Completed != nil {
		filter["completed"] = *opts.Completed
	}
	if opts.Priority != "" {
		filter["priority"] = opts.Priority
	}
	if opts.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}
	if opts.Overdue {
		filter["dueDate"] = bson.M{"$lt": now}
		filter["completed"] = false
	}

	return filter
}

// buildListSort produces the sort document, with _id as a stable tiebreak so
// pages stay deterministic.
func buildListSort(opts ListOptions) bson.D {
	field := opts.SortBy
	if field == "" {
		field = defaultSortField
	}
	dir := -1
	if opts.SortOrder == "asc" {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// weekRange returns the current calendar week as [start, end), with the week
// starting on Sunday at local midnight.
func weekRange(now time.Time) (time.Time, time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := midnight.AddDate(0, 0, -int(now.Weekday()))
	return start, start.AddDate(0, 0, 7)
}
