// Package router đăng ký các route thuộc domain Project.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	projecthdl "github.com/mehedi2283/nobelMan-server/internal/api/project/handler"
	projectsvc "github.com/mehedi2283/nobelMan-server/internal/api/project/service"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/global"
)

// Register đăng ký tất cả route project lên group /api.
// Like và comment là thao tác ghi công khai nên đi qua WriteLimiter.
func Register(api fiber.Router, r *apirouter.Router) error {
	coll, err := r.Collections.MustGet(global.MongoDB_ColNames.Projects)
	if err != nil {
		return fmt.Errorf("project routes: %w", err)
	}
	h := projecthdl.NewProjectHandler(projectsvc.NewProjectService(coll), r.StoreTimeout())

	projects := api.Group("/projects")
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodGet, "", nil, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodPost, "", nil, h.HandleUpsert)
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodPost, "/reorder", nil, h.HandleReorder)
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodPost, "/:id/like", r.PublicWrite(), h.HandleLike)
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodPost, "/:id/comment", r.PublicWrite(), h.HandleAddComment)
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodPut, "/:id/comments/:commentId/read", nil, h.HandleMarkCommentRead)
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodDelete, "/:id/comments/:commentId", nil, h.HandleDeleteComment)
	apirouter.RegisterRouteWithMiddleware(projects, fiber.MethodDelete, "/:id", nil, h.HandleDelete)
	return nil
}
