// Package router đăng ký các route thuộc domain Message.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	messagehdl "github.com/mehedi2283/nobelMan-server/internal/api/message/handler"
	messagesvc "github.com/mehedi2283/nobelMan-server/internal/api/message/service"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/global"
)

// Register đăng ký tất cả route tin nhắn lên group /api
func Register(api fiber.Router, r *apirouter.Router) error {
	coll, err := r.Collections.MustGet(global.MongoDB_ColNames.Messages)
	if err != nil {
		return fmt.Errorf("message routes: %w", err)
	}
	h := messagehdl.NewMessageHandler(messagesvc.NewMessageService(coll, r.Notifier), r.StoreTimeout())

	messages := api.Group("/messages")
	apirouter.RegisterRouteWithMiddleware(messages, fiber.MethodGet, "", nil, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(messages, fiber.MethodPost, "", r.PublicWrite(), h.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(messages, fiber.MethodPut, "/:id/read", nil, h.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(messages, fiber.MethodDelete, "/:id", nil, h.HandleDelete)
	return nil
}
