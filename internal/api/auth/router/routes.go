// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/mehedi2283/nobelMan-server/internal/api/auth/handler"
	authsvc "github.com/mehedi2283/nobelMan-server/internal/api/auth/service"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/global"
)

// Register đăng ký route /auth lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	coll, err := r.Collections.MustGet(global.MongoDB_ColNames.Admins)
	if err != nil {
		return fmt.Errorf("auth routes: %w", err)
	}
	h := authhdl.NewAuthHandler(authsvc.NewAdminService(coll), r.StoreTimeout())

	auth := api.Group("/auth")
	apirouter.RegisterRouteWithMiddleware(auth, fiber.MethodPost, "/login", r.PublicWrite(), h.HandleLogin)
	apirouter.RegisterRouteWithMiddleware(auth, fiber.MethodPost, "/update", nil, h.HandleUpdate)
	return nil
}
