// Package profilehdl chứa HTTP handler cho profile.
package profilehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mehedi2283/nobelMan-server/internal/api/base/handler"
	profiledto "github.com/mehedi2283/nobelMan-server/internal/api/profile/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/profile/models"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// ProfileService là các thao tác handler cần từ tầng service
type ProfileService interface {
	Get(ctx context.Context) (models.Profile, error)
	Upsert(ctx context.Context, fields map[string]interface{}) (models.Profile, error)
}

// ProfileHandler xử lý GET/POST /profile
type ProfileHandler struct {
	svc          ProfileService
	storeTimeout time.Duration
}

// NewProfileHandler tạo mới ProfileHandler
func NewProfileHandler(svc ProfileService, storeTimeout time.Duration) *ProfileHandler {
	return &ProfileHandler{svc: svc, storeTimeout: storeTimeout}
}

// HandleGet xử lý GET /profile
func (h *ProfileHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		profile, err := h.svc.Get(ctx)
		return basehdl.HandleResponse(c, profile, err)
	})
}

// HandleUpsert xử lý POST /profile
func (h *ProfileHandler) HandleUpsert(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input profiledto.ProfileUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}
		fields, err := input.Fields()
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		profile, err := h.svc.Upsert(ctx, fields)
		if err == nil {
			logger.LogCRUD("upsert", "profile", models.MainKey, c)
		}
		return basehdl.HandleResponse(c, profile, err)
	})
}
