// Package logohdl chứa HTTP handler cho logo khách hàng.
package logohdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mehedi2283/nobelMan-server/internal/api/base/handler"
	logodto "github.com/mehedi2283/nobelMan-server/internal/api/logo/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/logo/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// LogoService là các thao tác handler cần từ tầng service
type LogoService interface {
	List(ctx context.Context) ([]models.ClientLogo, error)
	Create(ctx context.Context, input *logodto.LogoCreateInput) (models.ClientLogo, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int64, error)
}

// LogoHandler xử lý các request liên quan đến logo
type LogoHandler struct {
	svc          LogoService
	storeTimeout time.Duration
}

// NewLogoHandler tạo mới LogoHandler
func NewLogoHandler(svc LogoService, storeTimeout time.Duration) *LogoHandler {
	return &LogoHandler{svc: svc, storeTimeout: storeTimeout}
}

// HandleList xử lý GET /logos
func (h *LogoHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		logos, err := h.svc.List(ctx)
		return basehdl.HandleResponse(c, logos, err)
	})
}

// HandleCreate xử lý POST /logos
func (h *LogoHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input logodto.LogoCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		logo, err := h.svc.Create(ctx, &input)
		if err == nil {
			logger.LogCRUD("create", "logo", logo.ID.Hex(), c)
		}
		return basehdl.HandleResponse(c, logo, err)
	})
}

// HandleDelete xử lý DELETE /logos/:id
func (h *LogoHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		id := c.Params("id")
		if err := h.svc.Delete(ctx, id); err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.LogCRUD("delete", "logo", id, c)
		return basehdl.MessageResponse(c, common.StatusOK, "Logo deleted")
	})
}

// HandleBulkDelete xử lý POST /logos/bulk-delete
func (h *LogoHandler) HandleBulkDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input logodto.LogoBulkDeleteInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		deleted, err := h.svc.BulkDelete(ctx, input.IDs)
		if err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.WithRequestInfo(c, "logo", "").WithField("deletedCount", deleted).Info("Logos bulk deleted")
		return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"message":      "Logos deleted",
			"deletedCount": deleted,
		})
	})
}
