package services

import "strings"

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}

// likePattern builds a case-insensitive LIKE pattern for a search term.
func likePattern(term string) string {
	return "%" + strings.ToUpper(strings.TrimSpace(term)) + "%"
}
