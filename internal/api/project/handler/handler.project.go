// Package projecthdl chứa HTTP handler cho domain Project.
package projecthdl

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/mehedi2283/nobelMan-server/internal/api/base/handler"
	projectdto "github.com/mehedi2283/nobelMan-server/internal/api/project/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/project/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// ProjectService là các thao tác handler cần từ tầng service
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Upsert(ctx context.Context, input *projectdto.ProjectUpsertInput) (models.Project, error)
	Like(ctx context.Context, id string) (models.Project, error)
	AddComment(ctx context.Context, id string, input *projectdto.CommentCreateInput) (models.Project, error)
	MarkCommentRead(ctx context.Context, id, commentID string) (models.Project, error)
	DeleteComment(ctx context.Context, id, commentID string) (models.Project, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
}

// ProjectHandler xử lý các request liên quan đến project
type ProjectHandler struct {
	svc          ProjectService
	storeTimeout time.Duration
}

// NewProjectHandler tạo mới ProjectHandler
func NewProjectHandler(svc ProjectService, storeTimeout time.Duration) *ProjectHandler {
	return &ProjectHandler{svc: svc, storeTimeout: storeTimeout}
}

// HandleList xử lý GET /projects
func (h *ProjectHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		projects, err := h.svc.List(ctx)
		return basehdl.HandleResponse(c, projects, err)
	})
}

// HandleUpsert xử lý POST /projects: tạo mới hoặc cập nhật theo id.
// Mọi lỗi của thao tác này đều trả về 400.
func (h *ProjectHandler) HandleUpsert(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input projectdto.ProjectUpsertInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		project, err := h.svc.Upsert(ctx, &input)
		if err != nil {
			return basehdl.HandleError(c, asBadRequest(err))
		}
		logger.LogCRUD("upsert", "project", project.ID, c)
		return basehdl.JSONResponse(c, common.StatusOK, project)
	})
}

// HandleReorder xử lý POST /projects/reorder
func (h *ProjectHandler) HandleReorder(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input projectdto.ReorderInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		ids := input.OrderedIDs()
		if err := h.svc.Reorder(ctx, ids); err != nil {
			return basehdl.HandleError(c, asBadRequest(err))
		}
		logger.WithRequestInfo(c, "project", "").WithField("count", len(ids)).Info("Projects reordered")
		return basehdl.MessageResponse(c, common.StatusOK, "Projects reordered")
	})
}

// HandleLike xử lý POST /projects/:id/like
func (h *ProjectHandler) HandleLike(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		project, err := h.svc.Like(ctx, c.Params("id"))
		return basehdl.HandleResponse(c, project, err)
	})
}

// HandleAddComment xử lý POST /projects/:id/comment
func (h *ProjectHandler) HandleAddComment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input projectdto.CommentCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleError(c, err)
		}

		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		project, err := h.svc.AddComment(ctx, c.Params("id"), &input)
		return basehdl.HandleResponse(c, project, err)
	})
}

// HandleMarkCommentRead xử lý PUT /projects/:id/comments/:commentId/read
func (h *ProjectHandler) HandleMarkCommentRead(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		project, err := h.svc.MarkCommentRead(ctx, c.Params("id"), c.Params("commentId"))
		return basehdl.HandleResponse(c, project, err)
	})
}

// HandleDeleteComment xử lý DELETE /projects/:id/comments/:commentId
func (h *ProjectHandler) HandleDeleteComment(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		id, commentID := c.Params("id"), c.Params("commentId")
		project, err := h.svc.DeleteComment(ctx, id, commentID)
		if err == nil {
			logger.LogCRUD("delete_comment", "project", id+"/"+commentID, c)
		}
		return basehdl.HandleResponse(c, project, err)
	})
}

// HandleDelete xử lý DELETE /projects/:id
func (h *ProjectHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		ctx, cancel := basehdl.StoreContext(c, h.storeTimeout)
		defer cancel()

		id := c.Params("id")
		if err := h.svc.Delete(ctx, id); err != nil {
			return basehdl.HandleError(c, err)
		}
		logger.LogCRUD("delete", "project", id, c)
		return basehdl.MessageResponse(c, common.StatusOK, "Project deleted")
	})
}

// asBadRequest đổi lỗi store (5xx) và lỗi trùng id thành 400 giữ nguyên message
func asBadRequest(err error) error {
	status := common.StatusOf(err)
	if status < common.StatusInternalServerError && !errors.Is(err, common.ErrDuplicate) {
		return err
	}
	return common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, err)
}
