package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository       *StudentRepository
	SkillRepository         *SkillRepository
	CourseRepository        *CourseRepository
	CertificationRepository *CertificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:       NewStudentRepository(db),
		SkillRepository:         NewSkillRepository(db),
		CourseRepository:        NewCourseRepository(db),
		CertificationRepository: NewCertificationRepository(db),
	}
}
