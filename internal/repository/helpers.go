package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableString converts a sql.NullString into a plain string ("" for NULL).
func nullableString(s sql.NullString) string {
	return s.String
}

// nullableID converts a typed identifier pointer into a value suitable for
// SQLite storage (NULL when nil).
func nullableID[T ~string](id *T) interface{} {
	if id == nil {
		return nil
	}
	return string(*id)
}

// scanNullableID converts a scanned sql.NullString back into a typed
// identifier pointer.
func scanNullableID[T ~string](s sql.NullString) *T {
	if !s.Valid || s.String == "" {
		return nil
	}
	id := T(s.String)
	return &id
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nullableBool converts a *bool to a value suitable for SQLite storage.
func nullableBool(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return boolToInt(*b)
}

// scanNullableBool converts a scanned sql.NullInt64 back into a *bool.
func scanNullableBool(v sql.NullInt64) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Int64 != 0
	return &b
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
