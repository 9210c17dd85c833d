package services

import (
	"context"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/app/models/dto"
)

// SkillService handles skill read operations
type SkillService struct {
	skills SkillStore
}

// NewSkillService creates a new SkillService
func NewSkillService(skills SkillStore) *SkillService {
	return &SkillService{
		skills: skills,
	}
}

// GroupedByCourse returns all skills grouped by their course label
func (s *SkillService) GroupedByCourse(ctx context.Context) ([]dto.CourseSkills, error) {
	skills, err := s.skills.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return GroupSkillsByCourse(skills), nil
}

// GroupSkillsByCourse groups skills by their course text field. Group order
// is the order each course label is first seen while scanning the input;
// within a group, input order is preserved.
func GroupSkillsByCourse(skills []*models.Skill) []dto.CourseSkills {
	groups := make([]dto.CourseSkills, 0)
	index := make(map[string]int)

	for _, skill := range skills {
		i, ok := index[skill.Course]
		if !ok {
			i = len(groups)
			index[skill.Course] = i
			groups = append(groups, dto.CourseSkills{Course: skill.Course})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}

	return groups
}
