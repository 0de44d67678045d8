// Package router đăng ký các route thuộc domain Profile.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	profilehdl "github.com/mehedi2283/nobelMan-server/internal/api/profile/handler"
	profilesvc "github.com/mehedi2283/nobelMan-server/internal/api/profile/service"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/global"
)

// Register đăng ký route profile lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	coll, err := r.Collections.MustGet(global.MongoDB_ColNames.Profiles)
	if err != nil {
		return fmt.Errorf("profile routes: %w", err)
	}
	h := profilehdl.NewProfileHandler(profilesvc.NewProfileService(coll), r.StoreTimeout())

	apirouter.RegisterRouteWithMiddleware(api, fiber.MethodGet, "/profile", nil, h.HandleGet)
	apirouter.RegisterRouteWithMiddleware(api, fiber.MethodPost, "/profile", nil, h.HandleUpsert)
	return nil
}
