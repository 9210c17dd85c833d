package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
)

// skillCreator and courseCreator are the slices of the repositories the
// seeder needs; tests substitute in-memory fakes.
type skillCreator interface {
	Create(ctx context.Context, skill *models.Skill) error
}

type courseCreator interface {
	Create(ctx context.Context, course *models.Course) error
}

// defaultSkills is the fixed reference catalog of skills
var defaultSkills = []models.Skill{
	{Name: "Python", Course: "Programming", Description: "Python programming language"},
	{Name: "Java", Course: "Programming", Description: "Java programming language"},
	{Name: "JavaScript", Course: "Web Development", Description: "JavaScript programming language"},
	{Name: "HTML/CSS", Course: "Web Development", Description: "Frontend web technologies"},
	{Name: "SQL", Course: "Database", Description: "Structured Query Language"},
	{Name: "React", Course: "Web Development", Description: "React JavaScript library"},
	{Name: "Django", Course: "Web Development", Description: "Django web framework"},
	{Name: "Machine Learning", Course: "Data Science", Description: "ML algorithms and techniques"},
	{Name: "Data Analysis", Course: "Data Science", Description: "Data analysis techniques"},
	{Name: "Leadership", Course: "Soft Skills", Description: "Leadership and management skills"},
	{Name: "Communication", Course: "Soft Skills", Description: "Communication and presentation skills"},
}

// defaultCourses is the fixed reference catalog of courses
var defaultCourses = []models.Course{
	{Name: "Programming", Description: "Core programming languages and concepts"},
	{Name: "Web Development", Description: "Frontend and backend web development"},
	{Name: "Database", Description: "Database design and management"},
	{Name: "Data Science", Description: "Data analysis and machine learning"},
	{Name: "Soft Skills", Description: "Communication and leadership skills"},
}

// CreateDefaultData inserts the default skill and course catalogs. Entries
// whose unique name already exists are skipped, so it is safe to run on every
// process start.
func CreateDefaultData(ctx context.Context, skills skillCreator, courses courseCreator, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (skills/courses)...")
	var finalErr error

	created := 0
	for _, entry := range defaultSkills {
		skill := entry
		err := skills.Create(ctx, &skill)
		if err != nil {
			if errors.Is(err, apperrors.ErrSkillAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("name", skill.Name).Msg("Error creating default skill")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	for _, entry := range defaultCourses {
		course := entry
		err := courses.Create(ctx, &course)
		if err != nil {
			if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("name", course.Name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default data check/creation finished")
	return finalErr
}
