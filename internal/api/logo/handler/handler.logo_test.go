package logohdl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	logodto "github.com/mehedi2283/nobelMan-server/internal/api/logo/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/logo/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

type memoryLogos struct {
	logos []models.ClientLogo
}

func (m *memoryLogos) List(ctx context.Context) ([]models.ClientLogo, error) {
	out := make([]models.ClientLogo, 0, len(m.logos))
	for i := len(m.logos) - 1; i >= 0; i-- {
		out = append(out, m.logos[i])
	}
	return out, nil
}

func (m *memoryLogos) Create(ctx context.Context, in *logodto.LogoCreateInput) (models.ClientLogo, error) {
	if strings.TrimSpace(in.URL) == "" {
		return models.ClientLogo{}, common.NewValidationError("url is required")
	}
	logo := models.ClientLogo{ID: primitive.NewObjectID(), Name: in.Name, URL: in.URL}
	m.logos = append(m.logos, logo)
	return logo, nil
}

func (m *memoryLogos) Delete(ctx context.Context, id string) error {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return err
	}
	for i, l := range m.logos {
		if l.ID == oid {
			m.logos = append(m.logos[:i], m.logos[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryLogos) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, common.NewValidationError("ids must be a non-empty array")
	}
	var n int64
	for _, id := range ids {
		before := len(m.logos)
		if err := m.Delete(ctx, id); err != nil {
			return 0, err
		}
		if len(m.logos) < before {
			n++
		}
	}
	return n, nil
}

func newTestApp(svc LogoService) *fiber.App {
	app := fiber.New()
	h := NewLogoHandler(svc, 0)
	app.Get("/api/logos", h.HandleList)
	app.Post("/api/logos", h.HandleCreate)
	app.Post("/api/logos/bulk-delete", h.HandleBulkDelete)
	app.Delete("/api/logos/:id", h.HandleDelete)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(data)
}

func TestLogoHandler_Flow(t *testing.T) {
	svc := &memoryLogos{}
	app := newTestApp(svc)

	status, body := do(t, app, http.MethodPost, "/api/logos", `{"name":"Acme","url":"https://acme/logo.png"}`)
	require.Equal(t, http.StatusOK, status, body)
	var created models.ClientLogo
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Contains(t, body, `"_id":"`+created.ID.Hex()+`"`)

	do(t, app, http.MethodPost, "/api/logos", `{"name":"Beta","url":"https://beta/logo.png"}`)

	status, body = do(t, app, http.MethodGet, "/api/logos", "")
	require.Equal(t, http.StatusOK, status)
	var list []models.ClientLogo
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Beta", list[0].Name, "Logo mới nhất đứng đầu")

	status, body = do(t, app, http.MethodDelete, "/api/logos/"+created.ID.Hex(), "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Logo deleted"}`, body)

	status, body = do(t, app, http.MethodPost, "/api/logos/bulk-delete", `{"ids":["`+list[0].ID.Hex()+`"]}`)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Logos deleted","deletedCount":1}`, body)
}

func TestLogoHandler_ValidationErrors(t *testing.T) {
	app := newTestApp(&memoryLogos{})

	status, body := do(t, app, http.MethodPost, "/api/logos", `{"name":"no url"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"url is required"}`, body)

	status, body = do(t, app, http.MethodDelete, "/api/logos/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"message":"Invalid id"}`, body)

	status, _ = do(t, app, http.MethodPost, "/api/logos/bulk-delete", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}
