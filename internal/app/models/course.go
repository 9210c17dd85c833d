package models

// Course represents reference data for a course of study.
// Only the seeder writes courses; no route mutates them.
type Course struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description,omitempty" db:"description"`
}
