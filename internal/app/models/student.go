package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id" example:"1"`                          // Unique identifier for the student
	Username     string    `json:"username" db:"username" example:"jdoe"`           // Unique login name
	Email        string    `json:"email,omitempty" db:"email"`                      // Unique email address (may be empty)
	PasswordHash string    `json:"-" db:"password_hash"`                            // Hashed password (excluded from JSON)
	Bio          string    `json:"bio,omitempty" db:"bio"`                          // Free-text bio (may be empty)
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`                       // Timestamp when the student was created

	// Relations (populated when needed)
	Skills         []*Skill         `json:"skills,omitempty"`
	Certifications []*Certification `json:"certifications,omitempty"`
}
