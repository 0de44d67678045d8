package basehdl

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func readBody(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestHandleError_StatusAndMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/nf", func(c fiber.Ctx) error { return HandleError(c, common.NewNotFoundError("Project not found")) })
	app.Get("/store", func(c fiber.Ctx) error { return HandleError(c, errors.New("connection reset")) })
	app.Get("/ok", func(c fiber.Ctx) error { return HandleResponse(c, fiber.Map{"a": 1}, nil) })

	status, body := readBody(t, app, "GET", "/nf", "")
	assert.Equal(t, 404, status)
	assert.JSONEq(t, `{"message":"Project not found"}`, body)

	status, body = readBody(t, app, "GET", "/store", "")
	assert.Equal(t, 500, status)
	assert.JSONEq(t, `{"message":"connection reset"}`, body)

	status, body = readBody(t, app, "GET", "/ok", "")
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"a":1}`, body)
}

func TestParseRequestBody(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c fiber.Ctx) error {
		var in struct {
			Name string `json:"name"`
		}
		if err := ParseRequestBody(c, &in); err != nil {
			return HandleError(c, err)
		}
		return MessageResponse(c, 200, in.Name)
	})

	status, body := readBody(t, app, "POST", "/", `{"name":"logo"}`)
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"message":"logo"}`, body)

	status, _ = readBody(t, app, "POST", "/", `{bad json`)
	assert.Equal(t, 400, status)

	status, body = readBody(t, app, "POST", "/", "")
	assert.Equal(t, 400, status)
	assert.JSONEq(t, `{"message":"Request body is required"}`, body)
}

func TestSafeHandlerWrapper_RecoversPanic(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return SafeHandlerWrapper(c, func() error { panic("boom") })
	})

	status, body := readBody(t, app, "GET", "/", "")
	assert.Equal(t, 500, status)
	assert.Contains(t, body, "boom")
}

func TestStoreContext_Timeout(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		ctx, cancel := StoreContext(c, 50*time.Millisecond)
		defer cancel()
		_, hasDeadline := ctx.Deadline()

		ctx2, cancel2 := StoreContext(c, 0)
		defer cancel2()
		_, hasDeadline2 := ctx2.Deadline()
		return c.JSON(fiber.Map{"timeout": hasDeadline, "unbounded": !hasDeadline2})
	})

	_, body := readBody(t, app, "GET", "/", "")
	assert.JSONEq(t, `{"timeout":true,"unbounded":true}`, body)
}

func TestSystemHandler(t *testing.T) {
	app := fiber.New()
	healthy := NewSystemHandler(fakePinger{})
	down := NewSystemHandler(fakePinger{err: errors.New("no reachable servers")})
	app.Get("/", healthy.HandleRoot)
	app.Get("/health", healthy.HandleHealth)
	app.Get("/health-down", down.HandleHealth)
	app.Get("/health-nil", NewSystemHandler(nil).HandleHealth)

	status, body := readBody(t, app, "GET", "/", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "Server is running...", body)

	status, _ = readBody(t, app, "GET", "/health", "")
	assert.Equal(t, 200, status)

	status, body = readBody(t, app, "GET", "/health-down", "")
	assert.Equal(t, 503, status)
	assert.Contains(t, body, "no reachable servers")

	status, _ = readBody(t, app, "GET", "/health-nil", "")
	assert.Equal(t, 503, status)
}
