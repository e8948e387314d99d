package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"videoh/internal/http-api/auth"
	"videoh/internal/http-api/dto"
	"videoh/internal/http-api/handler"
	"videoh/internal/http-api/middleware"
	"videoh/internal/http-api/models"
	"videoh/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCommentRepo is an in-memory CommentRepository, backing end-to-end
// tests of stored comment state without a database.
type fakeCommentRepo struct {
	rows   map[int64]*models.Comment
	nextID int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{rows: make(map[int64]*models.Comment)}
}

func (f *fakeCommentRepo) Create(comment *models.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	stored := *comment
	f.rows[comment.ID] = &stored
	return nil
}

func (f *fakeCommentRepo) GetByID(commentID int64) (*models.Comment, error) {
	if comment, ok := f.rows[commentID]; ok {
		result := *comment
		return &result, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommentRepo) GetByVideo(videoID int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, comment := range f.rows {
		if comment.VideoID == videoID {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

func (f *fakeCommentRepo) GetReported() ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, comment := range f.rows {
		if comment.Reported {
			comments = append(comments, *comment)
		}
	}
	return comments, nil
}

func (f *fakeCommentRepo) Delete(commentID int64) (int64, error) {
	if _, ok := f.rows[commentID]; !ok {
		return 0, nil
	}
	delete(f.rows, commentID)
	return 1, nil
}

func (f *fakeCommentRepo) MarkReported(commentID int64) (*models.Comment, error) {
	comment, ok := f.rows[commentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	comment.Reported = true
	result := *comment
	return &result, nil
}

// MockCommentService mocks the CommentService interface
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListForVideo(videoID int64) ([]models.Comment, error) {
	args := m.Called(videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) Create(claims auth.Claims, req dto.NewCommentDTO) error {
	args := m.Called(claims, req)
	return args.Error(0)
}

func (m *MockCommentService) ListReported(claims auth.Claims) ([]models.Comment, error) {
	args := m.Called(claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(claims auth.Claims, commentID int64) error {
	args := m.Called(claims, commentID)
	return args.Error(0)
}

func (m *MockCommentService) Report(commentID int64) error {
	args := m.Called(commentID)
	return args.Error(0)
}

func mintToken(t *testing.T, email, role string) string {
	t.Helper()

	claims := &auth.Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)
	return token
}

func newRouter(commentService service.CommentService, ratingService service.RatingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/dev/api")
	api.Use(middleware.RequireClaims())
	if commentService != nil {
		handler.NewCommentHandler(commentService).RegisterRoutes(api)
	}
	if ratingService != nil {
		handler.NewRatingHandler(ratingService).RegisterRoutes(api)
	}
	return r
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCommentHandler_ListForVideo(t *testing.T) {
	svc := new(MockCommentService)
	r := newRouter(svc, nil)
	token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

	svc.On("ListForVideo", int64(7)).Return([]models.Comment{
		{ID: 1, VideoID: 7, OwnerEmail: "a@x.com", Body: "first"},
	}, nil)

	w := doRequest(r, http.MethodGet, "/dev/api/comments/7", token, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner_email":"a@x.com"`)
	assert.Contains(t, w.Body.String(), `"reported":false`)
}

func TestCommentHandler_ListForVideo_RequiresCredential(t *testing.T) {
	svc := new(MockCommentService)
	r := newRouter(svc, nil)

	w := doRequest(r, http.MethodGet, "/dev/api/comments/7", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "ListForVideo", mock.Anything)
}

func TestCommentHandler_Create(t *testing.T) {
	t.Run("owner creates comment", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

		svc.On("Create",
			mock.MatchedBy(func(c auth.Claims) bool { return c.Email == "a@x.com" }),
			dto.NewCommentDTO{VideoID: 7, OwnerEmail: "a@x.com", Body: "hello"},
		).Return(nil)

		w := doRequest(r, http.MethodPost, "/dev/api/comments", token,
			`{"video_id":7,"owner_email":"a@x.com","body":"hello"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("ownership mismatch yields 401", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

		svc.On("Create", mock.Anything, mock.Anything).Return(service.ErrUnauthorized)

		w := doRequest(r, http.MethodPost, "/dev/api/comments", token,
			`{"video_id":7,"owner_email":"b@x.com","body":"hello"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

		w := doRequest(r, http.MethodPost, "/dev/api/comments", token, `{"video_id":"seven"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCommentHandler_ListReported(t *testing.T) {
	t.Run("administrator", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "admin@x.com", auth.RoleAdministrator)

		svc.On("ListReported", mock.MatchedBy(func(c auth.Claims) bool {
			return c.Role == auth.RoleAdministrator
		})).Return([]models.Comment{{ID: 3, Reported: true}}, nil)

		w := doRequest(r, http.MethodGet, "/dev/api/comments/reported", token, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reported":true`)
	})

	t.Run("registered user refused", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

		svc.On("ListReported", mock.Anything).Return(nil, service.ErrUnauthorized)

		w := doRequest(r, http.MethodGet, "/dev/api/comments/reported", token, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCommentHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"successful delete", nil, http.StatusOK},
		{"not the owner", service.ErrUnauthorized, http.StatusUnauthorized},
		{"missing comment", service.ErrCommentNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCommentService)
			r := newRouter(svc, nil)
			token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

			svc.On("Delete", mock.Anything, int64(4)).Return(tt.serviceErr)

			w := doRequest(r, http.MethodGet, "/dev/api/comments/delete/4", token, "")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// Reporting is one-way and idempotent: a second report succeeds and the
// comment stays flagged.
func TestCommentFlow_ReportTwiceStaysFlagged(t *testing.T) {
	repo := newFakeCommentRepo()
	r := newRouter(service.NewCommentService(repo), nil)
	token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

	w := doRequest(r, http.MethodPost, "/dev/api/comments", token,
		`{"video_id":7,"owner_email":"a@x.com","body":"rude remark"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for i := 0; i < 2; i++ {
		w = doRequest(r, http.MethodGet, "/dev/api/comments/report/1", token, "")
		require.Equal(t, http.StatusOK, w.Code, "report attempt %d", i+1)

		stored, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.True(t, stored.Reported, "report attempt %d", i+1)
	}

	flagged, err := repo.GetReported()
	require.NoError(t, err)
	assert.Len(t, flagged, 1)
}

func TestCommentHandler_Report(t *testing.T) {
	t.Run("existing comment", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

		svc.On("Report", int64(4)).Return(nil)

		w := doRequest(r, http.MethodGet, "/dev/api/comments/report/4", token, "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing comment", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

		svc.On("Report", int64(99)).Return(service.ErrCommentNotFound)

		w := doRequest(r, http.MethodGet, "/dev/api/comments/report/99", token, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		svc := new(MockCommentService)
		r := newRouter(svc, nil)
		token := mintToken(t, "a@x.com", auth.RoleRegisteredUser)

		w := doRequest(r, http.MethodGet, "/dev/api/comments/report/abc", token, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Report", mock.Anything)
	})
}
