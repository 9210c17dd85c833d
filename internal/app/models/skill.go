package models

// Skill defines the skill model based on the 'skills' table.
// Course is a free-text label, not a foreign key to the courses table.
type Skill struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Course      string `json:"course" db:"course"`
	Description string `json:"description,omitempty" db:"description"`
}
