package helpers

import "database/sql"

// GetNullString converts a string value to sql.NullString.
// An empty string maps to SQL NULL.
func GetNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullStringValue converts a sql.NullString back to a plain string,
// mapping NULL to the empty string.
func NullStringValue(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
