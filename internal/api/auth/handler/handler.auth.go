// Package authhdl chứa HTTP handler đăng nhập và đổi thông tin admin.
package authhdl

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	authdto "github.com/mehedi2283/nobelMan-server/internal/api/auth/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/auth/models"
	basehdl "github.com/mehedi2283/nobelMan-server/internal/api/base/handler"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// AdminService là các thao tác handler cần từ tầng service
type AdminService interface {
	Login(ctx context.Context, input *authdto.LoginInput) (models.Admin, error)
	UpdateCredentials(ctx context.Context, input *authdto.UpdateCredentialsInput) (models.Admin, error)
}

// AuthHandler xử lý các route /auth
type AuthHandler struct {
	svc          AdminService
	storeTimeout time.Duration
}

// NewAuthHandler tạo mới AuthHandler
func NewAuthHandler(svc AdminService, storeTimeout time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, storeTimeout: storeTimeout}
}

// HandleLogin xử lý POST /auth/login. Không phát token, chỉ trả về kết quả kiểm tra.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.LoginInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		_, err := h.svc.Login(ctx, &input)
		logger.LogAuth("login", c, map[string]interface{}{
			"email":   strings.TrimSpace(input.Email),
			"success": err == nil,
		})
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		return basehdl.MessageResponse(c, common.StatusOK, "Login successful")
	})
}

// HandleUpdate xử lý POST /auth/update
func (h *AuthHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.UpdateCredentialsInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		if _, err := h.svc.UpdateCredentials(ctx, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.LogAuth("update_credentials", c, map[string]interface{}{
			"email": strings.TrimSpace(input.Email),
		})
		return basehdl.MessageResponse(c, common.StatusOK, "Credentials updated")
	})
}
