// Package router đăng ký các route thuộc domain Logo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	logohdl "github.com/mehedi2283/nobelMan-server/internal/api/logo/handler"
	logosvc "github.com/mehedi2283/nobelMan-server/internal/api/logo/service"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/global"
)

// Register đăng ký tất cả route logo lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	coll, err := r.Collections.MustGet(global.MongoDB_ColNames.ClientLogos)
	if err != nil {
		return fmt.Errorf("logo routes: %w", err)
	}
	h := logohdl.NewLogoHandler(logosvc.NewLogoService(coll), r.StoreTimeout())

	logos := api.Group("/logos")
	apirouter.RegisterRouteWithMiddleware(logos, fiber.MethodGet, "", nil, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(logos, fiber.MethodPost, "", nil, h.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(logos, fiber.MethodPost, "/bulk-delete", nil, h.HandleBulkDelete)
	apirouter.RegisterRouteWithMiddleware(logos, fiber.MethodDelete, "/:id", nil, h.HandleDelete)
	return nil
}
