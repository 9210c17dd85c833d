package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/db"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
	"github.com/skilltrack/skilltrack/internal/pkg/dberrors"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
	"github.com/skilltrack/skilltrack/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student together with its initial skill set in one
// transaction. Unknown skill ids are silently skipped. The unique constraints
// on username and email are the authoritative duplicate guard.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query, args, err := r.sb.Insert("students").
			Columns("username", "email", "password_hash", "bio").
			Values(student.Username, helpers.GetNullString(student.Email), student.PasswordHash, helpers.GetNullString(student.Bio)).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		if err := tx.QueryRow(ctx, query, args...).Scan(&student.ID, &student.CreatedAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_username_key") {
				return apperrors.ErrUsernameAlreadyExists
			}
			if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		if err := replaceSkills(ctx, tx, student.ID, skillIDs, false); err != nil {
			return err
		}

		logger.Info().Int64("studentID", student.ID).Str("username", student.Username).Msg("Student created")
		return nil
	})
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select("id", "username", "email", "password_hash", "bio", "created_at").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	return r.scanStudent(ctx, query, args)
}

// GetByUsername retrieves a student by username
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	query, args, err := r.sb.Select("id", "username", "email", "password_hash", "bio", "created_at").
		From("students").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	return r.scanStudent(ctx, query, args)
}

func (r *StudentRepository) scanStudent(ctx context.Context, query string, args []interface{}) (*models.Student, error) {
	var student models.Student
	var email, bio sql.NullString

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&student.ID, &student.Username, &email, &student.PasswordHash, &bio, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.Email = helpers.NullStringValue(email)
	student.Bio = helpers.NullStringValue(bio)
	return &student, nil
}

// UsernameExists checks if a username is taken by a student other than excludeID.
// Pass excludeID 0 to check against all students.
func (r *StudentRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	return r.fieldExists(ctx, "username", username, excludeID)
}

// EmailExists checks if an email is taken by a student other than excludeID.
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.fieldExists(ctx, "email", email, excludeID)
}

func (r *StudentRepository) fieldExists(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	builder := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{column: value})
	if excludeID > 0 {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s exists query: %w", column, err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s existence: %w", column, err)
	}

	return exists, nil
}

// UpdateProfile overwrites username, email and bio and replaces the whole
// skill association set in a single transaction.
func (r *StudentRepository) UpdateProfile(ctx context.Context, studentID int64, username, email, bio string, skillIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query, args, err := r.sb.Update("students").
			Set("username", username).
			Set("email", helpers.GetNullString(email)).
			Set("bio", helpers.GetNullString(bio)).
			Where(squirrel.Eq{"id": studentID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update profile query: %w", err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_username_key") {
				return apperrors.ErrUsernameAlreadyExists
			}
			if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return replaceSkills(ctx, tx, studentID, skillIDs, true)
	})
}

// replaceSkills rewrites the student_skills association set for a student.
// Submitted ids with no matching skill row are skipped, not rejected.
func replaceSkills(ctx context.Context, tx pgx.Tx, studentID int64, skillIDs []int64, clearFirst bool) error {
	if clearFirst {
		if _, err := tx.Exec(ctx, `DELETE FROM student_skills WHERE student_id = $1`, studentID); err != nil {
			return fmt.Errorf("error clearing skill associations: %w", err)
		}
	}

	if len(skillIDs) == 0 {
		return nil
	}

	// Joining against skills drops unknown ids; ON CONFLICT keeps the pair
	// set semantics if the same id is submitted twice.
	_, err := tx.Exec(ctx, `
		INSERT INTO student_skills (student_id, skill_id)
		SELECT $1, id FROM skills WHERE id = ANY($2)
		ON CONFLICT DO NOTHING`,
		studentID, skillIDs)
	if err != nil {
		return fmt.Errorf("error inserting skill associations: %w", err)
	}

	return nil
}

// GetSkills retrieves the skills associated with a student, in skill id order
func (r *StudentRepository) GetSkills(ctx context.Context, studentID int64) ([]*models.Skill, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.course, s.description
		FROM skills s
		JOIN student_skills ss ON ss.skill_id = s.id
		WHERE ss.student_id = $1
		ORDER BY s.id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// List retrieves one page of students in insertion order
func (r *StudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	query, args, err := r.sb.Select("id", "username", "email", "password_hash", "bio", "created_at").
		From("students").
		OrderBy("id").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	return r.queryStudents(ctx, query, args)
}

// Recent retrieves the most recently created students, newest first
func (r *StudentRepository) Recent(ctx context.Context, limit int) ([]*models.Student, error) {
	query, args, err := r.sb.Select("id", "username", "email", "password_hash", "bio", "created_at").
		From("students").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent students query: %w", err)
	}

	return r.queryStudents(ctx, query, args)
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args []interface{}) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		var student models.Student
		var email, bio sql.NullString
		if err := rows.Scan(&student.ID, &student.Username, &email, &student.PasswordHash, &bio, &student.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		student.Email = helpers.NullStringValue(email)
		student.Bio = helpers.NullStringValue(bio)
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
