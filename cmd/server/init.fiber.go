package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"github.com/mehedi2283/nobelMan-server/config"
	authrouter "github.com/mehedi2283/nobelMan-server/internal/api/auth/router"
	basehdl "github.com/mehedi2283/nobelMan-server/internal/api/base/handler"
	chatlogrouter "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/router"
	logorouter "github.com/mehedi2283/nobelMan-server/internal/api/logo/router"
	messagerouter "github.com/mehedi2283/nobelMan-server/internal/api/message/router"
	"github.com/mehedi2283/nobelMan-server/internal/api/middleware"
	profilerouter "github.com/mehedi2283/nobelMan-server/internal/api/profile/router"
	projectrouter "github.com/mehedi2283/nobelMan-server/internal/api/project/router"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// routeRegistrations là Register của từng domain, đăng ký lên group /api
var routeRegistrations = []apirouter.RegisterFunc{
	authrouter.Register,
	projectrouter.Register,
	logorouter.Register,
	profilerouter.Register,
	messagerouter.Register,
	chatlogrouter.Register,
}

// parseOrigins tách CORS_ORIGINS thành danh sách, "*" cho phép tất cả
func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "*" || strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// InitFiberApp khởi tạo ứng dụng Fiber với middleware và toàn bộ route
func InitFiberApp(cfg *config.Configuration, r *apirouter.Router, store basehdl.Pinger) (*fiber.App, error) {
	log := logger.GetAppLogger()

	app := fiber.New(fiber.Config{
		AppName:      "NobelMan Portfolio API",
		ServerHeader: "NobelMan Portfolio API",

		BodyLimit:       10 * 1024 * 1024, // 10MB, ảnh gallery có thể là data URL
		ReadBufferSize:  8192,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: middleware.ErrorHandler,
	})

	// 1. Request ID để trace log theo request
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// 2. CORS đặt sớm để preflight được trả về trước các middleware khác
	origins := parseOrigins(cfg.CORS_Origins)
	allowCredentials := cfg.CORS_AllowCredentials
	if allowCredentials && len(origins) == 1 && origins[0] == "*" {
		log.Warn("CORS_ALLOW_CREDENTIALS bị bỏ qua vì CORS_ORIGINS là *")
		allowCredentials = false
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-Requested-With"},
		AllowCredentials: allowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	// 3. Security headers
	app.Use(middleware.SecurityHeaders())

	// 4. Recover: panic được chuyển thành lỗi 500 qua ErrorHandler
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", fmt.Sprintf("%v", e)).Error("Panic recovered")
		},
	}))

	// 5. Rate limit cho các endpoint ghi công khai
	if cfg.RateLimit_Enabled {
		r.WriteLimiter = middleware.WriteLimiter(cfg.RateLimit_Max, time.Duration(cfg.RateLimit_Window)*time.Second)
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	system := basehdl.NewSystemHandler(store)
	app.Get("/", system.HandleRoot)
	app.Get("/api/health", system.HandleHealth)

	if err := apirouter.SetupRoutes(app, r, routeRegistrations...); err != nil {
		return nil, err
	}
	return app, nil
}
