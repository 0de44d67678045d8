package projecthdl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	projectdto "github.com/mehedi2283/nobelMan-server/internal/api/project/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/project/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
)

// memoryProjects là service giả lưu project trong bộ nhớ
type memoryProjects struct {
	mu       sync.Mutex
	projects map[string]*models.Project
	failWith error
}

func newMemoryProjects() *memoryProjects {
	return &memoryProjects{projects: map[string]*models.Project{}}
}

func (m *memoryProjects) List(ctx context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]models.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, *p)
	}
	// sắp xếp theo order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (m *memoryProjects) Upsert(ctx context.Context, in *projectdto.ProjectUpsertInput) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return models.Project{}, m.failWith
	}
	id := in.BusinessKey()
	if id == "" {
		return models.Project{}, common.NewValidationError("Project id is required")
	}
	p, ok := m.projects[id]
	if !ok {
		if missing := in.MissingForCreate(); len(missing) > 0 {
			return models.Project{}, common.MissingFieldsError(missing)
		}
		p = &models.Project{ID: id, Order: len(m.projects)}
		m.projects[id] = p
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	p.Normalize()
	return *p, nil
}

func (m *memoryProjects) get(id string) (*models.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, common.NewNotFoundError("Project not found")
	}
	return p, nil
}

func (m *memoryProjects) Like(ctx context.Context, id string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.get(id)
	if err != nil {
		return models.Project{}, err
	}
	p.Likes++
	return *p, nil
}

func (m *memoryProjects) AddComment(ctx context.Context, id string, in *projectdto.CommentCreateInput) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if strings.TrimSpace(in.Author) == "" || strings.TrimSpace(in.Text) == "" {
		return models.Project{}, common.NewValidationError("Author and text required")
	}
	p, err := m.get(id)
	if err != nil {
		return models.Project{}, err
	}
	p.Comments = append(p.Comments, models.Comment{ID: models.NewCommentID(), Author: in.Author, Text: in.Text})
	return *p, nil
}

func (m *memoryProjects) MarkCommentRead(ctx context.Context, id, commentID string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.get(id)
	if err != nil {
		return models.Project{}, err
	}
	for i := range p.Comments {
		if string(p.Comments[i].ID) == commentID {
			p.Comments[i].Read = true
			return *p, nil
		}
	}
	return models.Project{}, common.NewNotFoundError("Comment not found")
}

func (m *memoryProjects) DeleteComment(ctx context.Context, id, commentID string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, err := m.get(id)
	if err != nil {
		return models.Project{}, err
	}
	kept := p.Comments[:0]
	for _, cm := range p.Comments {
		if string(cm.ID) != commentID {
			kept = append(kept, cm)
		}
	}
	p.Comments = kept
	return *p, nil
}

func (m *memoryProjects) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.projects, id)
	return nil
}

func (m *memoryProjects) Reorder(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(ids) == 0 {
		return common.NewValidationError("Project list is required")
	}
	if m.failWith != nil {
		return m.failWith
	}
	for i, id := range ids {
		if p, ok := m.projects[id]; ok {
			p.Order = i
		}
	}
	return nil
}

func newTestApp(svc ProjectService) *fiber.App {
	app := fiber.New()
	h := NewProjectHandler(svc, 0)
	app.Get("/api/projects", h.HandleList)
	app.Post("/api/projects", h.HandleUpsert)
	app.Post("/api/projects/reorder", h.HandleReorder)
	app.Post("/api/projects/:id/like", h.HandleLike)
	app.Post("/api/projects/:id/comment", h.HandleAddComment)
	app.Put("/api/projects/:id/comments/:commentId/read", h.HandleMarkCommentRead)
	app.Delete("/api/projects/:id/comments/:commentId", h.HandleDeleteComment)
	app.Delete("/api/projects/:id", h.HandleDelete)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestProjectHandler_CreateListReorder(t *testing.T) {
	app := newTestApp(newMemoryProjects())

	status, body := do(t, app, http.MethodPost, "/api/projects", `{"id":"p1","title":"One","category":"UX","image":"a.png"}`)
	require.Equal(t, http.StatusOK, status, string(body))
	status, _ = do(t, app, http.MethodPost, "/api/projects", `{"id":"p2","title":"Two","category":"UX","image":"b.png"}`)
	require.Equal(t, http.StatusOK, status)

	status, body = do(t, app, http.MethodPost, "/api/projects/reorder", `{"projects":[{"id":"p2"},{"id":"p1"}]}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Projects reordered"}`, string(body))

	status, body = do(t, app, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, status)
	var list []models.Project
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "p2", list[0].ID)
	assert.Equal(t, 0, list[0].Order)
	assert.Equal(t, "p1", list[1].ID)
	assert.Equal(t, 1, list[1].Order)

	// Dạng body {"ids": [...]} cũng được chấp nhận
	status, _ = do(t, app, http.MethodPost, "/api/projects/reorder", `{"ids":["p1","p2"]}`)
	require.Equal(t, http.StatusOK, status)
	_, body = do(t, app, http.MethodGet, "/api/projects", "")
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, "p1", list[0].ID)
}

func TestProjectHandler_UpsertErrors(t *testing.T) {
	svc := newMemoryProjects()
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodPost, "/api/projects", `{"id":"p1","title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Missing required fields: category, image"}`, string(body))

	status, _ = do(t, app, http.MethodPost, "/api/projects", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)

	// Lỗi store của upsert cũng trả về 400 kèm message gốc
	svc.failWith = errors.New("E11000 duplicate key")
	status, body = do(t, app, http.MethodPost, "/api/projects", `{"id":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"E11000 duplicate key"}`, string(body))
}

func TestProjectHandler_UpsertDuplicateIsBadRequest(t *testing.T) {
	svc := newMemoryProjects()
	// Hai request tạo cùng id đồng thời: index unique trả về duplicate key
	svc.failWith = common.ConvertMongoError(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error collection: Project_Collection index: id_unique"}},
	})
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodPost, "/api/projects", `{"id":"p1","title":"One","category":"UX","image":"a.png"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "E11000 duplicate key")
}

func TestProjectHandler_ListStoreError(t *testing.T) {
	svc := newMemoryProjects()
	svc.failWith = common.ConvertMongoError(errors.New("connection refused"))
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodGet, "/api/projects", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.JSONEq(t, `{"message":"connection refused"}`, string(body))
}

func TestProjectHandler_ReorderEmpty(t *testing.T) {
	app := newTestApp(newMemoryProjects())
	status, _ := do(t, app, http.MethodPost, "/api/projects/reorder", `{"projects":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProjectHandler_LikeAndComments(t *testing.T) {
	app := newTestApp(newMemoryProjects())
	do(t, app, http.MethodPost, "/api/projects", `{"id":"p1","title":"One","category":"UX","image":"a.png"}`)

	status, body := do(t, app, http.MethodPost, "/api/projects/missing/like", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Project not found"}`, string(body))

	for i := 0; i < 3; i++ {
		status, body = do(t, app, http.MethodPost, "/api/projects/p1/like", "")
		require.Equal(t, http.StatusOK, status)
	}
	var p models.Project
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, 3, p.Likes)

	status, body = do(t, app, http.MethodPost, "/api/projects/p1/comment", `{"author":"","text":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Author and text required"}`, string(body))

	status, body = do(t, app, http.MethodPost, "/api/projects/p1/comment", `{"author":"A","text":"hi"}`)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &p))
	require.Len(t, p.Comments, 1)
	assert.False(t, p.Comments[0].Read)
	commentID := string(p.Comments[0].ID)

	status, body = do(t, app, http.MethodPut, "/api/projects/p1/comments/"+commentID+"/read", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &p))
	assert.True(t, p.Comments[0].Read)

	status, _ = do(t, app, http.MethodPut, "/api/projects/p1/comments/unknown/read", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = do(t, app, http.MethodDelete, "/api/projects/p1/comments/"+commentID, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Empty(t, p.Comments)
}

func TestProjectHandler_DeleteIsIdempotent(t *testing.T) {
	app := newTestApp(newMemoryProjects())
	for i := 0; i < 2; i++ {
		status, body := do(t, app, http.MethodDelete, "/api/projects/ghost", "")
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"message":"Project deleted"}`, string(body))
	}
}

func TestProjectHandler_RecoversPanic(t *testing.T) {
	app := fiber.New()
	h := NewProjectHandler(nil, 0)
	app.Get("/api/projects", h.HandleList)

	status, body := do(t, app, http.MethodGet, "/api/projects", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, string(body), "Internal server error")
}
