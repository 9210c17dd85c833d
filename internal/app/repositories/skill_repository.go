package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
	"github.com/skilltrack/skilltrack/internal/pkg/dberrors"
	"github.com/skilltrack/skilltrack/internal/pkg/helpers"
)

// SkillRepository handles database operations for skills
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{
		db: db,
	}
}

// Create inserts a new skill. A duplicate name maps to ErrSkillAlreadyExists.
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO skills (name, course, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, skill.Name, skill.Course, helpers.GetNullString(skill.Description)).Scan(&skill.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "skills_name_key") {
			return apperrors.ErrSkillAlreadyExists
		}
		return fmt.Errorf("error creating skill: %w", err)
	}

	return nil
}

// GetAll retrieves all skills in insertion order
func (r *SkillRepository) GetAll(ctx context.Context) ([]*models.Skill, error) {
	query := `
		SELECT id, name, course, description
		FROM skills
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying skills: %w", err)
	}
	defer rows.Close()

	return scanSkills(rows)
}

// NameExists checks if a skill with the given name exists
func (r *SkillRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking skill name: %w", err)
	}
	return exists, nil
}

// Count returns the total number of skills
func (r *SkillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting skills: %w", err)
	}
	return count, nil
}

// scanSkills drains skill rows, shared with the student repository's
// association queries
func scanSkills(rows pgx.Rows) ([]*models.Skill, error) {
	skills := make([]*models.Skill, 0)
	for rows.Next() {
		var skill models.Skill
		var description sql.NullString
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Course, &description); err != nil {
			return nil, fmt.Errorf("error scanning skill row: %w", err)
		}
		skill.Description = helpers.NullStringValue(description)
		skills = append(skills, &skill)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return skills, nil
}
