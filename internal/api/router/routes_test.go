package router

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehedi2283/nobelMan-server/internal/notify"
)

func TestRegisterRouteWithMiddleware_RunsChainInOrder(t *testing.T) {
	app := fiber.New()
	var order []string
	mw := func(name string) fiber.Handler {
		return func(c fiber.Ctx) error {
			order = append(order, name)
			return c.Next()
		}
	}

	RegisterRouteWithMiddleware(app, fiber.MethodPost, "/x", []fiber.Handler{mw("a"), nil, mw("b")}, func(c fiber.Ctx) error {
		order = append(order, "handler")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"a", "b", "handler"}, order)

	// Method khác không được đăng ký
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusOK, resp.StatusCode)
}

func TestSetupRoutes_PrefixAndError(t *testing.T) {
	app := fiber.New()
	r := NewRouter(nil, nil, nil)
	_, isNoop := r.Notifier.(notify.Noop)
	assert.True(t, isNoop)
	assert.Nil(t, r.PublicWrite())

	err := SetupRoutes(app, r, func(api fiber.Router, _ *Router) error {
		api.Get("/ping", func(c fiber.Ctx) error { return c.SendString("pong") })
		return nil
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	boom := errors.New("boom")
	err = SetupRoutes(fiber.New(), r, func(fiber.Router, *Router) error { return boom })
	assert.ErrorIs(t, err, boom)
}
