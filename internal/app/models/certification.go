package models

import (
	"time"
)

// Certification defines the certification model based on the 'certifications' table
type Certification struct {
	ID           int64      `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Issuer       string     `json:"issuer" db:"issuer"`
	IssueDate    time.Time  `json:"issueDate" db:"issue_date"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty" db:"expiry_date"` // Nullable
	CredentialID string     `json:"credentialId,omitempty" db:"credential_id"`
	StudentID    int64      `json:"studentId" db:"student_id"`

	// Relation (populated when needed)
	Student *Student `json:"student,omitempty"`
}
