package services

import (
	"context"
	"sort"

	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
)

// fakeStudentStore is an in-memory StudentStore for service tests.
type fakeStudentStore struct {
	students map[int64]*models.Student
	skills   map[int64][]int64 // studentID -> skill ids
	catalog  map[int64]*models.Skill
	nextID   int64
	err      error // injected failure, returned by every call when set
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students: make(map[int64]*models.Student),
		skills:   make(map[int64][]int64),
		catalog:  make(map[int64]*models.Skill),
		nextID:   1,
	}
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student, skillIDs []int64) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.students {
		if existing.Username == student.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if student.Email != "" && existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	f.students[student.ID] = student
	f.skills[student.ID] = f.knownSkillIDs(skillIDs)
	return nil
}

// knownSkillIDs drops ids with no catalog entry, mirroring the SQL
// INSERT..SELECT that only associates skills that exist.
func (f *fakeStudentStore) knownSkillIDs(skillIDs []int64) []int64 {
	kept := make([]int64, 0, len(skillIDs))
	for _, id := range skillIDs {
		if _, ok := f.catalog[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, student := range f.students {
		if student.Username == username {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, student := range f.students {
		if student.Username == username && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, student := range f.students {
		if student.Email == email && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) UpdateProfile(ctx context.Context, studentID int64, username, email, bio string, skillIDs []int64) error {
	if f.err != nil {
		return f.err
	}
	student, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Username = username
	student.Email = email
	student.Bio = bio
	f.skills[studentID] = f.knownSkillIDs(skillIDs)
	return nil
}

func (f *fakeStudentStore) GetSkills(ctx context.Context, studentID int64) ([]*models.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := append([]int64(nil), f.skills[studentID]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	owned := make([]*models.Skill, 0, len(ids))
	for _, id := range ids {
		owned = append(owned, f.catalog[id])
	}
	return owned, nil
}

func (f *fakeStudentStore) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.sortedByID()
	if offset >= uint64(len(all)) {
		return []*models.Student{}, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeStudentStore) Recent(ctx context.Context, limit int) ([]*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := f.sortedByID()
	// newest first; ids are assigned in creation order
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeStudentStore) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.students)), nil
}

func (f *fakeStudentStore) sortedByID() []*models.Student {
	all := make([]*models.Student, 0, len(f.students))
	for _, student := range f.students {
		all = append(all, student)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// fakeSkillStore is an in-memory SkillStore.
type fakeSkillStore struct {
	skills []*models.Skill
	err    error
}

func (f *fakeSkillStore) GetAll(ctx context.Context) ([]*models.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.skills, nil
}

func (f *fakeSkillStore) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.skills)), nil
}

// fakeCertificationStore is an in-memory CertificationStore.
type fakeCertificationStore struct {
	certs  []*models.Certification
	nextID int64
	err    error
}

func (f *fakeCertificationStore) Create(ctx context.Context, cert *models.Certification) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	cert.ID = f.nextID
	f.certs = append(f.certs, cert)
	return nil
}

func (f *fakeCertificationStore) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Certification, error) {
	if f.err != nil {
		return nil, f.err
	}
	owned := make([]*models.Certification, 0)
	for _, cert := range f.certs {
		if cert.StudentID == studentID {
			owned = append(owned, cert)
		}
	}
	return owned, nil
}

func (f *fakeCertificationStore) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.certs)), nil
}
