package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/skilltrack/skilltrack/internal/app/controllers"
	"github.com/skilltrack/skilltrack/internal/app/models"
	"github.com/skilltrack/skilltrack/internal/app/routes"
	"github.com/skilltrack/skilltrack/internal/app/services"
	"github.com/skilltrack/skilltrack/internal/middleware"
	"github.com/skilltrack/skilltrack/internal/pkg/apperrors"
	"github.com/skilltrack/skilltrack/internal/pkg/auth"
)

// memStore implements the service store interfaces in memory so the full
// middleware + controller + service path runs without a database.
type memStore struct {
	students     map[int64]*models.Student
	studentOrder []int64
	skillsOwned  map[int64][]int64
	skillCatalog []*models.Skill
	certs        []*models.Certification
	nextStudent  int64
	nextCert     int64
}

func newMemStore() *memStore {
	return &memStore{
		students:    make(map[int64]*models.Student),
		skillsOwned: make(map[int64][]int64),
	}
}

func (m *memStore) Create(ctx context.Context, student *models.Student, skillIDs []int64) error {
	for _, existing := range m.students {
		if existing.Username == student.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if student.Email != "" && existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	m.nextStudent++
	student.ID = m.nextStudent
	student.CreatedAt = time.Now()
	m.students[student.ID] = student
	m.studentOrder = append(m.studentOrder, student.ID)
	m.skillsOwned[student.ID] = m.knownSkillIDs(skillIDs)
	return nil
}

func (m *memStore) knownSkillIDs(skillIDs []int64) []int64 {
	kept := make([]int64, 0, len(skillIDs))
	for _, id := range skillIDs {
		for _, skill := range m.skillCatalog {
			if skill.ID == id {
				kept = append(kept, id)
				break
			}
		}
	}
	return kept
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (m *memStore) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	for _, student := range m.students {
		if student.Username == username {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *memStore) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	for _, student := range m.students {
		if student.Username == username && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	for _, student := range m.students {
		if student.Email == email && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) UpdateProfile(ctx context.Context, studentID int64, username, email, bio string, skillIDs []int64) error {
	student, ok := m.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Username = username
	student.Email = email
	student.Bio = bio
	m.skillsOwned[studentID] = m.knownSkillIDs(skillIDs)
	return nil
}

func (m *memStore) GetSkills(ctx context.Context, studentID int64) ([]*models.Skill, error) {
	ids := append([]int64(nil), m.skillsOwned[studentID]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	owned := make([]*models.Skill, 0, len(ids))
	for _, id := range ids {
		for _, skill := range m.skillCatalog {
			if skill.ID == id {
				owned = append(owned, skill)
			}
		}
	}
	return owned, nil
}

func (m *memStore) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	if offset >= uint64(len(m.studentOrder)) {
		return []*models.Student{}, nil
	}
	ids := m.studentOrder[offset:]
	if len(ids) > limit {
		ids = ids[:limit]
	}
	page := make([]*models.Student, 0, len(ids))
	for _, id := range ids {
		page = append(page, m.students[id])
	}
	return page, nil
}

func (m *memStore) Recent(ctx context.Context, limit int) ([]*models.Student, error) {
	recent := make([]*models.Student, 0, limit)
	for i := len(m.studentOrder) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, m.students[m.studentOrder[i]])
	}
	return recent, nil
}

func (m *memStore) Count(ctx context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

// skillView exposes the catalog as a SkillStore.
type skillView struct{ store *memStore }

func (v skillView) GetAll(ctx context.Context) ([]*models.Skill, error) {
	return v.store.skillCatalog, nil
}

func (v skillView) Count(ctx context.Context) (int64, error) {
	return int64(len(v.store.skillCatalog)), nil
}

// certView exposes certifications as a CertificationStore.
type certView struct{ store *memStore }

func (v certView) Create(ctx context.Context, cert *models.Certification) error {
	v.store.nextCert++
	cert.ID = v.store.nextCert
	v.store.certs = append(v.store.certs, cert)
	return nil
}

func (v certView) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Certification, error) {
	owned := make([]*models.Certification, 0)
	for _, cert := range v.store.certs {
		if cert.StudentID == studentID {
			owned = append(owned, cert)
		}
	}
	return owned, nil
}

func (v certView) Count(ctx context.Context) (int64, error) {
	return int64(len(v.store.certs)), nil
}

// testApp wires the full router over a memStore.
type testApp struct {
	router   *gin.Engine
	store    *memStore
	sessions *auth.SessionService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	lgr := zerolog.Nop()

	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey:   "test-secret",
		SessionExp:  24 * time.Hour,
		RememberExp: 720 * time.Hour,
		TokenIssuer: "skilltrack.test",
	})

	authService := services.NewAuthService(store, lgr)
	studentService := services.NewStudentService(store, skillView{store}, certView{store}, lgr)
	skillService := services.NewSkillService(skillView{store})
	certService := services.NewCertificationService(certView{store}, lgr)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewAuthController(authService, sessions, lgr),
		controllers.NewStudentController(studentService, lgr),
		controllers.NewSkillController(skillService),
		controllers.NewCertificationController(certService, lgr),
		middleware.NewAuthMiddleware(sessions),
	)

	return &testApp{router: router, store: store, sessions: sessions}
}

// addStudent inserts a student directly into the store.
func (a *testApp) addStudent(t *testing.T, username, email, password string) *models.Student {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	student := &models.Student{Username: username, Email: email, PasswordHash: hash}
	require.NoError(t, a.store.Create(context.Background(), student, nil))
	return student
}

// sessionCookie returns a valid session cookie for the student.
func (a *testApp) sessionCookie(t *testing.T, student *models.Student) *http.Cookie {
	t.Helper()
	token, _, err := a.sessions.GenerateToken(student.ID, student.Username, false)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// do runs a request through the router.
func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// postForm builds a form POST request.
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
