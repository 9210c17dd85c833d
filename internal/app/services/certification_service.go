package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/app/models/dto"
)

// CertificationService handles certification recording
type CertificationService struct {
	certifications CertificationStore
	logger         zerolog.Logger
}

// NewCertificationService creates a new CertificationService
func NewCertificationService(certifications CertificationStore, logger zerolog.Logger) *CertificationService {
	return &CertificationService{
		certifications: certifications,
		logger:         logger,
	}
}

// AddCertification records a certification attributed to the given student.
// Dates arrive already parsed; no ordering between issue and expiry is
// enforced.
func (s *CertificationService) AddCertification(ctx context.Context, studentID int64, form *dto.CertificationForm, issueDate time.Time, expiryDate *time.Time) (*models.Certification, error) {
	cert := &models.Certification{
		Name:         form.Name,
		Issuer:       form.Issuer,
		IssueDate:    issueDate,
		ExpiryDate:   expiryDate,
		CredentialID: form.CredentialID,
		StudentID:    studentID,
	}

	if err := s.certifications.Create(ctx, cert); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("certificationID", cert.ID).Int64("studentID", studentID).Str("name", cert.Name).Msg("Certification recorded")
	return cert, nil
}
