// Package basehdl chứa các helper dùng chung cho handler: đọc body, trả JSON, map lỗi sang HTTP status.
package basehdl

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// MessageResponse trả về body {"message": msg}
func MessageResponse(c fiber.Ctx, statusCode int, msg string) error {
	return JSONResponse(c, statusCode, fiber.Map{"message": msg})
}

// HandleError map lỗi sang status và trả về {"message"}.
// Lỗi 5xx được ghi vào error logger kèm thông tin request.
func HandleError(c fiber.Ctx, err error) error {
	status := common.StatusOf(err)
	if status >= common.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Error("Request failed")
	}
	return MessageResponse(c, status, err.Error())
}

// HandleResponse trả về data với status 200, hoặc lỗi qua HandleError
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleError(c, err)
	}
	return JSONResponse(c, common.StatusOK, data)
}

// ParseRequestBody đọc JSON body vào out, lỗi định dạng trả về 400
func ParseRequestBody(c fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return common.NewError(common.ErrCodeValidationFormat, "Request body is required", common.StatusBadRequest, nil)
	}
	if err := c.App().Config().JSONDecoder(c.Body(), out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Invalid JSON body: %v", err), common.StatusBadRequest, err)
	}
	return nil
}

// StoreContext tạo context cho thao tác store từ context của request.
// timeout <= 0 nghĩa là không giới hạn thời gian.
func StoreContext(c fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := c.Context()
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// SafeHandlerWrapper chạy fn và bắt panic, trả về 500 {"message"} thay vì làm rơi kết nối
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("stack", string(debug.Stack())).Errorf("Handler panic: %v", r)
			err = MessageResponse(c, common.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", r))
		}
	}()
	return fn()
}
