// Package router giữ các phụ thuộc dùng chung của API và đăng ký route của từng domain.
package router

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mehedi2283/nobelMan-server/config"
	"github.com/mehedi2283/nobelMan-server/internal/notify"
	"github.com/mehedi2283/nobelMan-server/internal/registry"
)

// Router chứa các phụ thuộc mà domain router cần để dựng service và handler
type Router struct {
	Collections *registry.Registry[*mongo.Collection] // Collections MongoDB theo tên
	Config      *config.Configuration
	Notifier    notify.Notifier

	// WriteLimiter áp dụng cho các endpoint ghi công khai, nil = không giới hạn
	WriteLimiter fiber.Handler
}

// NewRouter tạo Router. Notifier nil sẽ được thay bằng notify.Noop.
func NewRouter(collections *registry.Registry[*mongo.Collection], cfg *config.Configuration, notifier notify.Notifier) *Router {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	if cfg == nil {
		cfg = &config.Configuration{}
	}
	return &Router{
		Collections: collections,
		Config:      cfg,
		Notifier:    notifier,
	}
}

// StoreTimeout trả về timeout cho mỗi thao tác store trong request
func (r *Router) StoreTimeout() time.Duration {
	return r.Config.StoreTimeout()
}

// PublicWrite trả về middleware cho endpoint ghi công khai
func (r *Router) PublicWrite() []fiber.Handler {
	if r.WriteLimiter == nil {
		return nil
	}
	return []fiber.Handler{r.WriteLimiter}
}

// RegisterRouteWithMiddleware đăng ký route với chuỗi middleware chạy trước handler.
// Middleware nil bị bỏ qua.
func RegisterRouteWithMiddleware(router fiber.Router, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	chain := make([]any, 0, len(middlewares)+1)
	for _, mw := range middlewares {
		if mw != nil {
			chain = append(chain, mw)
		}
	}
	chain = append(chain, handler)
	router.Add([]string{method}, path, chain[0], chain[1:]...)
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes tạo group /api và gọi Register của từng domain.
// Caller truyền Register vào để tránh import cycle.
func SetupRoutes(app *fiber.App, r *Router, regs ...RegisterFunc) error {
	api := app.Group("/api")
	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}
	return nil
}
