package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/app/models/dto"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
)

func newStudentService(students *fakeStudentStore, skills *fakeSkillStore, certs *fakeCertificationStore) *StudentService {
	if skills == nil {
		skills = &fakeSkillStore{}
	}
	if certs == nil {
		certs = &fakeCertificationStore{}
	}
	return NewStudentService(students, skills, certs, zerolog.Nop())
}

func seedCatalog(store *fakeStudentStore, skills ...*models.Skill) {
	for _, skill := range skills {
		store.catalog[skill.ID] = skill
	}
}

func TestStudentService_AddStudent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStudentStore()
	seedCatalog(store,
		&models.Skill{ID: 1, Name: "Python", Course: "Programming"},
		&models.Skill{ID: 2, Name: "SQL", Course: "Database"},
	)
	svc := newStudentService(store, nil, nil)

	student, err := svc.AddStudent(ctx, &dto.StudentForm{
		Username:  "carol",
		Email:     "carol@example.com",
		Password:  "secret1",
		Password2: "secret1",
		Bio:       "Hi there",
		Skills:    []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", student.Bio)

	owned, err := store.GetSkills(ctx, student.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 2)
}

func TestStudentService_AddStudent_SkipsUnknownSkills(t *testing.T) {
	ctx := context.Background()
	store := newFakeStudentStore()
	seedCatalog(store, &models.Skill{ID: 1, Name: "Python", Course: "Programming"})
	svc := newStudentService(store, nil, nil)

	student, err := svc.AddStudent(ctx, &dto.StudentForm{
		Username:  "carol",
		Email:     "carol@example.com",
		Password:  "secret1",
		Password2: "secret1",
		Skills:    []int64{1, 999},
	})
	require.NoError(t, err)

	owned, err := store.GetSkills(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "Python", owned[0].Name)
}

func TestStudentService_UpdateProfile_OwnValuesAllowed(t *testing.T) {
	// Resubmitting the current username/email is not a conflict.
	ctx := context.Background()
	store := newFakeStudentStore()
	svc := newStudentService(store, nil, nil)

	carol := &models.Student{Username: "carol", Email: "carol@example.com"}
	require.NoError(t, store.Create(ctx, carol, nil))

	err := svc.UpdateProfile(ctx, carol.ID, &dto.EditProfileForm{
		Username: "carol",
		Email:    "carol@example.com",
		Bio:      "updated bio",
	})
	require.NoError(t, err)
	assert.Equal(t, "updated bio", carol.Bio)
}

func TestStudentService_UpdateProfile_ConflictWithOtherStudent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStudentStore()
	svc := newStudentService(store, nil, nil)

	carol := &models.Student{Username: "carol", Email: "carol@example.com"}
	dave := &models.Student{Username: "dave1", Email: "dave@example.com"}
	require.NoError(t, store.Create(ctx, carol, nil))
	require.NoError(t, store.Create(ctx, dave, nil))

	err := svc.UpdateProfile(ctx, dave.ID, &dto.EditProfileForm{
		Username: "carol",
		Email:    "dave@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	err = svc.UpdateProfile(ctx, dave.ID, &dto.EditProfileForm{
		Username: "dave1",
		Email:    "carol@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestStudentService_UpdateProfile_ReplacesSkills(t *testing.T) {
	ctx := context.Background()
	store := newFakeStudentStore()
	seedCatalog(store,
		&models.Skill{ID: 1, Name: "Python", Course: "Programming"},
		&models.Skill{ID: 2, Name: "SQL", Course: "Database"},
		&models.Skill{ID: 3, Name: "React", Course: "Web Development"},
	)
	svc := newStudentService(store, nil, nil)

	carol := &models.Student{Username: "carol", Email: "carol@example.com"}
	require.NoError(t, store.Create(ctx, carol, []int64{1, 2}))

	err := svc.UpdateProfile(ctx, carol.ID, &dto.EditProfileForm{
		Username: "carol",
		Email:    "carol@example.com",
		Skills:   []int64{3},
	})
	require.NoError(t, err)

	owned, err := store.GetSkills(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "React", owned[0].Name)
}

func TestStudentService_GetStudent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStudentStore()
	seedCatalog(store, &models.Skill{ID: 1, Name: "Python", Course: "Programming"})
	certs := &fakeCertificationStore{}
	svc := newStudentService(store, nil, certs)

	carol := &models.Student{Username: "carol", Email: "carol@example.com"}
	require.NoError(t, store.Create(ctx, carol, []int64{1}))
	require.NoError(t, certs.Create(ctx, &models.Certification{Name: "AWS SAA", Issuer: "AWS", StudentID: carol.ID}))

	student, err := svc.GetStudent(ctx, carol.ID)
	require.NoError(t, err)
	assert.Len(t, student.Skills, 1)
	assert.Len(t, student.Certifications, 1)
}

func TestStudentService_GetStudent_NotFound(t *testing.T) {
	svc := newStudentService(newFakeStudentStore(), nil, nil)

	_, err := svc.GetStudent(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestStudentService_SkillChoices(t *testing.T) {
	skills := &fakeSkillStore{skills: []*models.Skill{
		{ID: 1, Name: "Python", Course: "Programming"},
		{ID: 5, Name: "SQL", Course: "Database"},
	}}
	svc := newStudentService(newFakeStudentStore(), skills, nil)

	choices, err := svc.SkillChoices(context.Background())
	require.NoError(t, err)
	require.Len(t, choices, 2)
	assert.Equal(t, dto.SkillChoice{ID: 1, Label: "Python (Programming)"}, choices[0])
	assert.Equal(t, dto.SkillChoice{ID: 5, Label: "SQL (Database)"}, choices[1])
}

func TestStudentService_ListStudents(t *testing.T) {
	ctx := context.Background()
	store := newFakeStudentStore()
	svc := newStudentService(store, nil, nil)

	for i := 0; i < 23; i++ {
		student := &models.Student{
			Username: fmt.Sprintf("student%02d", i),
			Email:    fmt.Sprintf("student%02d@example.com", i),
		}
		require.NoError(t, store.Create(ctx, student, nil))
	}

	page1, err := svc.ListStudents(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Students, 10)
	assert.Equal(t, 1, page1.Pagination.CurrentPage)
	assert.Equal(t, 3, page1.Pagination.TotalPages)
	assert.Equal(t, int64(23), page1.Pagination.TotalItems)

	page3, err := svc.ListStudents(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, page3.Students, 3)

	// Pages past the end of the data come back empty, not as an error.
	page9999, err := svc.ListStudents(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, page9999.Students)
	assert.Equal(t, 9999, page9999.Pagination.CurrentPage)
}

func TestStudentService_DashboardStats(t *testing.T) {
	ctx := context.Background()
	store := newFakeStudentStore()
	skills := &fakeSkillStore{skills: []*models.Skill{{ID: 1, Name: "Python", Course: "Programming"}}}
	certs := &fakeCertificationStore{}
	svc := newStudentService(store, skills, certs)

	for i := 0; i < 7; i++ {
		student := &models.Student{
			Username: fmt.Sprintf("student%d", i),
			Email:    fmt.Sprintf("student%d@example.com", i),
		}
		require.NoError(t, store.Create(ctx, student, nil))
	}
	require.NoError(t, certs.Create(ctx, &models.Certification{Name: "Cert", Issuer: "Issuer", StudentID: 1}))

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.StudentsCount)
	assert.Equal(t, int64(1), stats.SkillsCount)
	assert.Equal(t, int64(1), stats.CertificationsCount)

	// The dashboard shows the five newest students, newest first.
	require.Len(t, stats.RecentStudents, 5)
	assert.Equal(t, "student6", stats.RecentStudents[0].Username)
	assert.Equal(t, "student2", stats.RecentStudents[4].Username)
}
