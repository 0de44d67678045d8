// Package router đăng ký các route thuộc domain ChatLog.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chatloghdl "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/handler"
	chatlogsvc "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/service"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/global"
)

// Register đăng ký tất cả route chat log lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	coll, err := r.Collections.MustGet(global.MongoDB_ColNames.ChatLogs)
	if err != nil {
		return fmt.Errorf("chatlog routes: %w", err)
	}
	svc := chatlogsvc.NewChatLogService(coll, r.Config.ChatLogLimit)
	h := chatloghdl.NewChatLogHandler(svc, r.StoreTimeout())

	logs := api.Group("/chat-logs")
	apirouter.RegisterRouteWithMiddleware(logs, fiber.MethodGet, "", nil, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(logs, fiber.MethodPost, "", r.PublicWrite(), h.HandleAppend)
	apirouter.RegisterRouteWithMiddleware(logs, fiber.MethodPut, "/:id/read", nil, h.HandleMarkRead)
	return nil
}
