// Package chatloghdl chứa HTTP handler cho lịch sử chat.
package chatloghdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mehedi2283/nobelMan-server/internal/api/base/handler"
	chatlogdto "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/models"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// ChatLogService là các thao tác handler cần từ tầng service
type ChatLogService interface {
	List(ctx context.Context) ([]models.ChatLog, error)
	Append(ctx context.Context, input *chatlogdto.ChatLogCreateInput) (models.ChatLog, error)
	MarkRead(ctx context.Context, id string) (models.ChatLog, error)
}

// ChatLogHandler xử lý các request liên quan đến chat log
type ChatLogHandler struct {
	svc          ChatLogService
	storeTimeout time.Duration
}

// NewChatLogHandler tạo mới ChatLogHandler
func NewChatLogHandler(svc ChatLogService, storeTimeout time.Duration) *ChatLogHandler {
	return &ChatLogHandler{svc: svc, storeTimeout: storeTimeout}
}

// HandleList xử lý GET /chat-logs
func (h *ChatLogHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		logs, err := h.svc.List(ctx)
		return basehdl.HandleResponse(c, logs, err)
	})
}

// HandleAppend xử lý POST /chat-logs
func (h *ChatLogHandler) HandleAppend(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input chatlogdto.ChatLogCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		log, err := h.svc.Append(ctx, &input)
		return basehdl.HandleResponse(c, log, err)
	})
}

// HandleMarkRead xử lý PUT /chat-logs/:id/read
func (h *ChatLogHandler) HandleMarkRead(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		log, err := h.svc.MarkRead(ctx, c.Params("id"))
		if err == nil {
			logger.LogCRUD("update", "chatlog", c.Params("id"), c)
		}
		return basehdl.HandleResponse(c, log, err)
	})
}
