// Package middleware chứa các middleware dùng chung cho toàn bộ API.
package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// ErrorHandler là fiber.Config.ErrorHandler: mọi lỗi lọt ra khỏi handler
// (route không tồn tại, body quá lớn, lỗi chưa được xử lý) đều trả về {"message"}.
func ErrorHandler(c fiber.Ctx, err error) error {
	code := common.StatusInternalServerError
	message := err.Error()

	var fiberErr *fiber.Error
	var appErr *common.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.As(err, &appErr):
		code = appErr.StatusCode
		message = appErr.Message
	}

	if code >= common.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Error("Request error")
	}
	return JSONResponse(c, code, fiber.Map{"message": message})
}
