package services

import (
	"context"

	"github.com/skilltrack/skilltrack/internal/app/models"
)

// StudentStore is the persistence surface the services need for students.
// *repositories.StudentRepository satisfies it; tests substitute fakes.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student, skillIDs []int64) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	UpdateProfile(ctx context.Context, studentID int64, username, email, bio string, skillIDs []int64) error
	GetSkills(ctx context.Context, studentID int64) ([]*models.Skill, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error)
	Recent(ctx context.Context, limit int) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
}

// SkillStore is the persistence surface for skills
type SkillStore interface {
	GetAll(ctx context.Context) ([]*models.Skill, error)
	Count(ctx context.Context) (int64, error)
}

// CertificationStore is the persistence surface for certifications
type CertificationStore interface {
	Create(ctx context.Context, cert *models.Certification) error
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Certification, error)
	Count(ctx context.Context) (int64, error)
}
