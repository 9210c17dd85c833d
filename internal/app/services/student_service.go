package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
	"github.com/skilltrack/skilltrack/internal/pkg/auth"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
)

// recentStudentsLimit is how many students the dashboard shows
const recentStudentsLimit = 5

// StudentService handles student roster and profile operations
type StudentService struct {
	students       StudentStore
	skills         SkillStore
	certifications CertificationStore
	logger         zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, skills SkillStore, certifications CertificationStore, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students:       students,
		skills:         skills,
		certifications: certifications,
		logger:         logger,
	}
}

// AddStudent creates a student from the add-student form, including bio and
// the initial skill selection. Unknown skill ids are skipped by the store.
func (s *StudentService) AddStudent(ctx context.Context, form *dto.StudentForm) (*models.Student, error) {
	taken, err := s.students.UsernameExists(ctx, form.Username, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	taken, err = s.students.EmailExists(ctx, form.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
		Bio:          form.Bio,
	}

	if err := s.students.Create(ctx, student, form.Skills); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("username", student.Username).Msg("Student added")
	return student, nil
}

// UpdateProfile applies a profile edit for the given student. Uniqueness
// checks exclude the student's own row so resubmitting unchanged values
// succeeds. The whole skill set is replaced with the submitted ids.
func (s *StudentService) UpdateProfile(ctx context.Context, studentID int64, form *dto.EditProfileForm) error {
	taken, err := s.students.UsernameExists(ctx, form.Username, studentID)
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if taken {
		return apperrors.ErrUsernameAlreadyExists
	}

	taken, err = s.students.EmailExists(ctx, form.Email, studentID)
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if taken {
		return apperrors.ErrEmailAlreadyExists
	}

	if err := s.students.UpdateProfile(ctx, studentID, form.Username, form.Email, form.Bio, form.Skills); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Msg("Profile updated")
	return nil
}

// GetStudent fetches a student with skills and certifications attached
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if student.Skills, err = s.students.GetSkills(ctx, id); err != nil {
		return nil, err
	}

	if student.Certifications, err = s.certifications.GetByStudentID(ctx, id); err != nil {
		return nil, err
	}

	return student, nil
}

// ProfileFormData pre-fills the edit-profile form for a student
func (s *StudentService) ProfileFormData(ctx context.Context, studentID int64) (*dto.ProfileFormData, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	owned, err := s.students.GetSkills(ctx, studentID)
	if err != nil {
		return nil, err
	}

	skillIDs := make([]int64, 0, len(owned))
	for _, skill := range owned {
		skillIDs = append(skillIDs, skill.ID)
	}

	choices, err := s.SkillChoices(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileFormData{
		Username: student.Username,
		Email:    student.Email,
		Bio:      student.Bio,
		SkillIDs: skillIDs,
		Choices:  choices,
	}, nil
}

// SkillChoices builds the skill multi-select options offered on forms
func (s *StudentService) SkillChoices(ctx context.Context) ([]dto.SkillChoice, error) {
	skills, err := s.skills.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	choices := make([]dto.SkillChoice, 0, len(skills))
	for _, skill := range skills {
		choices = append(choices, dto.SkillChoice{
			ID:    skill.ID,
			Label: fmt.Sprintf("%s (%s)", skill.Name, skill.Course),
		})
	}

	return choices, nil
}

// ListStudents returns one page of the roster. Pages past the end of the
// data come back empty, not as an error.
func (s *StudentService) ListStudents(ctx context.Context, page int) (*dto.StudentListPage, error) {
	offset, limit := helpers.CalculateOffsetLimit(page)

	students, err := s.students.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StudentListPage{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, page),
	}, nil
}

// DashboardStats aggregates the dashboard counters and the most recently
// created students
func (s *StudentService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	studentsCount, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}

	skillsCount, err := s.skills.Count(ctx)
	if err != nil {
		return nil, err
	}

	certificationsCount, err := s.certifications.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.students.Recent(ctx, recentStudentsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		StudentsCount:       studentsCount,
		SkillsCount:         skillsCount,
		CertificationsCount: certificationsCount,
		RecentStudents:      recent,
	}, nil
}
