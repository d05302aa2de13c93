package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-cms/inkwell/domain"
	"github.com/inkwell-cms/inkwell/internal/rest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService lets each test wire up exactly the operation under test.
type stubService struct {
	list      func(domain.ListOptions) ([]domain.Comment, error)
	find      func(string) (domain.Comment, error)
	add       func(domain.NewComment) (domain.Comment, error)
	update    func(string, domain.CommentUpdate) (bool, error)
	remove    func(string) (bool, error)
	deleteAll func(domain.CommentType) error
	counts    func() (domain.CommentCounts, error)
}

var _ domain.CommentUsecase = (*stubService)(nil)

func (s *stubService) List(_ context.Context, opts domain.ListOptions) ([]domain.Comment, error) {
	return s.list(opts)
}

func (s *stubService) FindByID(_ context.Context, id string) (domain.Comment, error) {
	return s.find(id)
}

func (s *stubService) Add(_ context.Context, in domain.NewComment) (domain.Comment, error) {
	return s.add(in)
}

func (s *stubService) Update(_ context.Context, action string, upd domain.CommentUpdate) (bool, error) {
	return s.update(action, upd)
}

func (s *stubService) Remove(_ context.Context, id string) (bool, error) {
	return s.remove(id)
}

func (s *stubService) DeleteAll(_ context.Context, t domain.CommentType) error {
	return s.deleteAll(t)
}

func (s *stubService) CountByState(context.Context) (domain.CommentCounts, error) {
	return s.counts()
}

func newRouter(svc domain.CommentUsecase) *gin.Engine {
	h := rest.NewCommentHandler(svc)
	r := gin.New()
	r.POST("/posts/:id/comments", h.Create)
	r.GET("/admin/comments", h.List)
	r.GET("/admin/comments/counts", h.Counts)
	r.GET("/admin/comments/:id", h.GetByID)
	r.PUT("/admin/comments/:id", h.Update)
	r.DELETE("/admin/comments/:id", h.Delete)
	r.DELETE("/admin/comments", h.DeleteAll)
	return r
}

func perform(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListHandler(t *testing.T) {
	t.Run("projects comments without the client ip", func(t *testing.T) {
		spam := domain.Comment{
			ID: "c1", PostID: "p1", Author: "Reader", Email: "reader@example.com",
			Content: "hi", IP: "203.0.113.7", Spam: true,
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		var gotOpts domain.ListOptions
		svc := &stubService{list: func(opts domain.ListOptions) ([]domain.Comment, error) {
			gotOpts = opts
			return []domain.Comment{spam}, nil
		}}

		w := perform(newRouter(svc), http.MethodGet, "/admin/comments?type=spam&take=5&skip=10", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.CommentSpam, gotOpts.Type)
		assert.Equal(t, 5, gotOpts.Take)
		assert.Equal(t, 10, gotOpts.Skip)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "spam", body[0]["status"])
		assert.Equal(t, "2024-03-01 12:00:00", body[0]["created_at"])
		assert.NotContains(t, w.Body.String(), "203.0.113.7")
	})

	t.Run("bad paging falls back to defaults", func(t *testing.T) {
		var gotOpts domain.ListOptions
		svc := &stubService{list: func(opts domain.ListOptions) ([]domain.Comment, error) {
			gotOpts = opts
			return nil, nil
		}}

		w := perform(newRouter(svc), http.MethodGet, "/admin/comments?take=-3&skip=oops", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, rest.DefaultPageSize, gotOpts.Take)
		assert.Zero(t, gotOpts.Skip)
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		svc := &stubService{list: func(domain.ListOptions) ([]domain.Comment, error) {
			return nil, domain.ErrForbidden
		}}

		w := perform(newRouter(svc), http.MethodGet, "/admin/comments", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetByIDHandler(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &stubService{find: func(string) (domain.Comment, error) {
			return domain.Comment{}, domain.ErrNotFound
		}}

		w := perform(newRouter(svc), http.MethodGet, "/admin/comments/nope", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateHandler(t *testing.T) {
	t.Run("creates and returns 201", func(t *testing.T) {
		var gotIn domain.NewComment
		svc := &stubService{add: func(in domain.NewComment) (domain.Comment, error) {
			gotIn = in
			return domain.Comment{ID: "c1", PostID: in.PostID, Content: in.Content}, nil
		}}

		w := perform(newRouter(svc), http.MethodPost, "/posts/p1/comments",
			`{"content":"hello","author":"Reader","email":"reader@example.com"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "p1", gotIn.PostID)
		assert.Equal(t, "hello", gotIn.Content)
		assert.NotEmpty(t, gotIn.IP, "client ip is captured from the request")
	})

	t.Run("missing content is rejected", func(t *testing.T) {
		svc := &stubService{}

		w := perform(newRouter(svc), http.MethodPost, "/posts/p1/comments", `{"author":"Reader"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		svc := &stubService{}

		w := perform(newRouter(svc), http.MethodPost, "/posts/p1/comments",
			`{"content":"hello","email":"not-an-email"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown post maps to 404", func(t *testing.T) {
		svc := &stubService{add: func(domain.NewComment) (domain.Comment, error) {
			return domain.Comment{}, domain.ErrNotFound
		}}

		w := perform(newRouter(svc), http.MethodPost, "/posts/nope/comments", `{"content":"hello"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("passes the action through", func(t *testing.T) {
		var gotAction string
		var gotUpd domain.CommentUpdate
		svc := &stubService{update: func(action string, upd domain.CommentUpdate) (bool, error) {
			gotAction = action
			gotUpd = upd
			return true, nil
		}}

		w := perform(newRouter(svc), http.MethodPut, "/admin/comments/c1?action=approve", `{}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "approve", gotAction)
		assert.Equal(t, "c1", gotUpd.ID)
	})

	t.Run("unknown comment maps to 404", func(t *testing.T) {
		svc := &stubService{update: func(string, domain.CommentUpdate) (bool, error) {
			return false, nil
		}}

		w := perform(newRouter(svc), http.MethodPut, "/admin/comments/nope?action=approve", `{}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("deletes and returns 204", func(t *testing.T) {
		svc := &stubService{remove: func(id string) (bool, error) {
			assert.Equal(t, "c1", id)
			return true, nil
		}}

		w := perform(newRouter(svc), http.MethodDelete, "/admin/comments/c1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown comment maps to 404", func(t *testing.T) {
		svc := &stubService{remove: func(string) (bool, error) { return false, nil }}

		w := perform(newRouter(svc), http.MethodDelete, "/admin/comments/nope", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteAllHandler(t *testing.T) {
	t.Run("sweeps and returns 204", func(t *testing.T) {
		var gotType domain.CommentType
		svc := &stubService{deleteAll: func(t domain.CommentType) error {
			gotType = t
			return nil
		}}

		w := perform(newRouter(svc), http.MethodDelete, "/admin/comments?type=spam", "")

		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.CommentSpam, gotType)
	})

	t.Run("unrecognized type maps to 400", func(t *testing.T) {
		svc := &stubService{deleteAll: func(domain.CommentType) error {
			return domain.ErrBadParamInput
		}}

		w := perform(newRouter(svc), http.MethodDelete, "/admin/comments?type=everything", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCountsHandler(t *testing.T) {
	svc := &stubService{counts: func() (domain.CommentCounts, error) {
		return domain.CommentCounts{Approved: 10, Pending: 2, Spam: 5}, nil
	}}

	w := perform(newRouter(svc), http.MethodGet, "/admin/comments/counts", "")

	require.Equal(t, http.StatusOK, w.Code)
	var counts domain.CommentCounts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, int64(10), counts.Approved)
	assert.Equal(t, int64(2), counts.Pending)
	assert.Equal(t, int64(5), counts.Spam)
}
