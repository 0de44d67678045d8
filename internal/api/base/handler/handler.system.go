package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

// Pinger là thứ có thể kiểm tra kết nối store (mongo.Client thỏa mãn qua adapter)
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler xử lý các route hệ thống: liveness và health
type SystemHandler struct {
	store Pinger
}

// NewSystemHandler tạo SystemHandler. store có thể nil (health sẽ báo not_initialized).
func NewSystemHandler(store Pinger) *SystemHandler {
	return &SystemHandler{store: store}
}

// HandleRoot xử lý GET / và trả về text cố định để kiểm tra server còn sống
func (h *SystemHandler) HandleRoot(c fiber.Ctx) error {
	return c.SendString("Server is running...")
}

// HandleHealth kiểm tra kết nối MongoDB, 503 khi không ping được
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	health := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  "ok",
	}

	if h.store == nil {
		health["status"] = "degraded"
		health["database"] = "not_initialized"
		return JSONResponse(c, common.StatusServiceUnavailable, health)
	}
	if err := h.store.Ping(ctx); err != nil {
		health["status"] = "degraded"
		health["database"] = "error"
		health["message"] = err.Error()
		return JSONResponse(c, common.StatusServiceUnavailable, health)
	}
	return JSONResponse(c, common.StatusOK, health)
}
