package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
	"github.com/skilltrack/skilltrack/internal/pkg/auth"
)

// AuthService handles authentication and registration
type AuthService struct {
	students StudentStore
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(students StudentStore, logger zerolog.Logger) *AuthService {
	return &AuthService{
		students: students,
		logger:   logger,
	}
}

// Authenticate checks a username/password pair against the store. Unknown
// username and wrong password both return ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Student, error) {
	student, err := s.students.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up student: %w", err)
	}

	if !auth.CheckPassword(student.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return student, nil
}

// Register creates a new student account from a registration form. Field
// validation has already happened at binding time; this applies the business
// rules (username/email uniqueness) and hashes the password.
func (s *AuthService) Register(ctx context.Context, form *dto.RegisterForm) (*models.Student, error) {
	// Pre-checks give friendly conflicts; the unique constraints catch races.
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
	}

	if err := s.students.Create(ctx, student, nil); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("username", student.Username).Msg("Student registered")
	return student, nil
}
