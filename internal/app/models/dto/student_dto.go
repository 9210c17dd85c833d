package dto

import "github.com/skilltrack/skilltrack/internal/app/models"

// StudentForm represents an add-student submission. Same field rules as
// registration plus bio and an initial skill selection.
type StudentForm struct {
	Username  string  `form:"username" json:"username" binding:"required,min=4,max=20"`
	Email     string  `form:"email" json:"email" binding:"required,email"`
	Password  string  `form:"password" json:"password" binding:"required,min=6"`
	Password2 string  `form:"password2" json:"password2" binding:"required,eqfield=Password"`
	Bio       string  `form:"bio" json:"bio" binding:"max=500"`
	Skills    []int64 `form:"skills" json:"skills"`
}

// EditProfileForm represents a profile edit submission
type EditProfileForm struct {
	Username string  `form:"username" json:"username" binding:"required,min=4,max=20"`
	Email    string  `form:"email" json:"email" binding:"required,email"`
	Bio      string  `form:"bio" json:"bio" binding:"max=500"`
	Skills   []int64 `form:"skills" json:"skills"`
}

// SkillChoice is one entry of the skill multi-select offered on forms
type SkillChoice struct {
	ID    int64  `json:"id"`
	Label string `json:"label" example:"Python (Programming)"`
}

// ProfileFormData pre-fills the edit-profile form with the current
// identity's data and the available skill choices
type ProfileFormData struct {
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Bio      string        `json:"bio"`
	SkillIDs []int64       `json:"skillIds"`
	Choices  []SkillChoice `json:"choices"`
}

// StudentListPage is one page of the student listing
type StudentListPage struct {
	Students   []*models.Student `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// DashboardStats aggregates the dashboard counters and recent students
type DashboardStats struct {
	StudentsCount       int64             `json:"studentsCount"`
	SkillsCount         int64             `json:"skillsCount"`
	CertificationsCount int64             `json:"certificationsCount"`
	RecentStudents      []*models.Student `json:"recentStudents"`
}

// CourseSkills is one course group of the skills-by-course view.
// Groups are kept in a slice so first-seen course order survives rendering.
type CourseSkills struct {
	Course string          `json:"course"`
	Skills []*models.Skill `json:"skills"`
}
