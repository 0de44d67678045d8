// Package messagehdl chứa HTTP handler cho tin nhắn liên hệ.
package messagehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mehedi2283/nobelMan-server/internal/api/base/handler"
	messagedto "github.com/mehedi2283/nobelMan-server/internal/api/message/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/message/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// MessageService là các thao tác handler cần từ tầng service
type MessageService interface {
	List(ctx context.Context) ([]models.Message, error)
	Create(ctx context.Context, fields map[string]interface{}) (models.Message, error)
	MarkRead(ctx context.Context, id string) (models.Message, error)
	Delete(ctx context.Context, id string) error
}

// MessageHandler xử lý các request liên quan đến tin nhắn
type MessageHandler struct {
	svc          MessageService
	storeTimeout time.Duration
}

// NewMessageHandler tạo mới MessageHandler
func NewMessageHandler(svc MessageService, storeTimeout time.Duration) *MessageHandler {
	return &MessageHandler{svc: svc, storeTimeout: storeTimeout}
}

// HandleList xử lý GET /messages
func (h *MessageHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		messages, err := h.svc.List(ctx)
		return basehdl.HandleResponse(c, messages, err)
	})
}

// HandleCreate xử lý POST /messages (form liên hệ công khai)
func (h *MessageHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input messagedto.MessageCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		// body "null" decode thành map nil
		if input == nil {
			return basehdl.HandleError(c, common.NewValidationError("Message body must be a JSON object"))
		}
		fields, err := input.Fields()
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		msg, err := h.svc.Create(ctx, fields)
		if err == nil {
			logger.WithRequestInfo(c, "message", "").Info("New contact message")
		}
		return basehdl.HandleResponse(c, msg, err)
	})
}

// HandleMarkRead xử lý PUT /messages/:id/read
func (h *MessageHandler) HandleMarkRead(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		msg, err := h.svc.MarkRead(ctx, c.Params("id"))
		if err == nil {
			logger.LogCRUD("update", "message", c.Params("id"), c)
		}
		return basehdl.HandleResponse(c, msg, err)
	})
}

// HandleDelete xử lý DELETE /messages/:id
func (h *MessageHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		id := c.Params("id")
		if err := h.svc.Delete(ctx, id); err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.LogCRUD("delete", "message", id, c)
		return basehdl.MessageResponse(c, common.StatusOK, "Message deleted")
	})
}
