package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilltrack/skilltrack/internal/app/models/dto"
)

func TestCertificationService_AddCertification(t *testing.T) {
	certs := &fakeCertificationStore{}
	svc := NewCertificationService(certs, zerolog.Nop())

	issued := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	expiry := issued.AddDate(3, 0, 0)

	cert, err := svc.AddCertification(context.Background(), 7, &dto.CertificationForm{
		Name:         "AWS Solutions Architect",
		Issuer:       "Amazon Web Services",
		CredentialID: "AWS-123",
	}, issued, &expiry)
	require.NoError(t, err)

	assert.NotZero(t, cert.ID)
	assert.Equal(t, int64(7), cert.StudentID)
	assert.Equal(t, issued, cert.IssueDate)
	require.NotNil(t, cert.ExpiryDate)
	assert.Equal(t, expiry, *cert.ExpiryDate)
	assert.Equal(t, "AWS-123", cert.CredentialID)
}

func TestCertificationService_AddCertification_NoExpiry(t *testing.T) {
	certs := &fakeCertificationStore{}
	svc := NewCertificationService(certs, zerolog.Nop())

	cert, err := svc.AddCertification(context.Background(), 7, &dto.CertificationForm{
		Name:   "CKA",
		Issuer: "CNCF",
	}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	assert.Nil(t, cert.ExpiryDate)
	assert.Empty(t, cert.CredentialID)
}

func TestCertificationService_AddCertification_StoreError(t *testing.T) {
	wantErr := errors.New("insert failed")
	certs := &fakeCertificationStore{err: wantErr}
	svc := NewCertificationService(certs, zerolog.Nop())

	_, err := svc.AddCertification(context.Background(), 7, &dto.CertificationForm{
		Name:   "CKA",
		Issuer: "CNCF",
	}, time.Now(), nil)
	assert.ErrorIs(t, err, wantErr)
}
