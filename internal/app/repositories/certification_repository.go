package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
	"github.com/skilltrack/skilltrack/internal/pkg/logger"
)

// CertificationRepository handles certification database operations
type CertificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificationRepository creates a new CertificationRepository
func NewCertificationRepository(db *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new certification attributed to a student
func (r *CertificationRepository) Create(ctx context.Context, cert *models.Certification) error {
	query, args, err := r.sb.Insert("certifications").
		Columns("name", "issuer", "issue_date", "expiry_date", "credential_id", "student_id").
		Values(cert.Name, cert.Issuer, cert.IssueDate, cert.ExpiryDate, helpers.GetNullString(cert.CredentialID), cert.StudentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create certification query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&cert.ID); err != nil {
		return fmt.Errorf("error creating certification: %w", err)
	}

	logger.Info().Int64("certificationID", cert.ID).Int64("studentID", cert.StudentID).Msg("Certification created")
	return nil
}

// GetByStudentID retrieves all certifications of one student, newest issue first
func (r *CertificationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Certification, error) {
	query, args, err := r.sb.Select("id", "name", "issuer", "issue_date", "expiry_date", "credential_id", "student_id").
		From("certifications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("issue_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build certifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying certifications: %w", err)
	}
	defer rows.Close()

	certs := make([]*models.Certification, 0)
	for rows.Next() {
		var cert models.Certification
		var credentialID sql.NullString
		if err := rows.Scan(&cert.ID, &cert.Name, &cert.Issuer, &cert.IssueDate, &cert.ExpiryDate, &credentialID, &cert.StudentID); err != nil {
			return nil, fmt.Errorf("error scanning certification row: %w", err)
		}
		cert.CredentialID = helpers.NullStringValue(credentialID)
		certs = append(certs, &cert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certs, nil
}

// Count returns the total number of certifications
func (r *CertificationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM certifications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting certifications: %w", err)
	}
	return count, nil
}
