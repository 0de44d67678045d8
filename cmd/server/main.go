package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mehedi2283/nobelMan-server/config"
	apirouter "github.com/mehedi2283/nobelMan-server/internal/api/router"
	"github.com/mehedi2283/nobelMan-server/internal/database"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
	"github.com/mehedi2283/nobelMan-server/internal/notify"
)

// initLogger khởi tạo logger cho toàn bộ ứng dụng, cấu hình đọc từ biến môi trường LOG_*
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// serve chạy Fiber server cho tới khi ctx bị hủy (SIGINT/SIGTERM)
func serve(ctx context.Context, app *fiber.App, cfg *config.Configuration) error {
	address := ":" + cfg.Address

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting server with HTTP")

	return app.Listen(address, fiber.ListenConfig{
		GracefulContext:       ctx,
		ShutdownTimeout:       10 * time.Second,
		DisableStartupMessage: true,
	})
}

func main() {
	initLogger()
	defer logger.Close()
	log := logger.GetAppLogger()

	cfg := initConfig()
	initValidator()

	client := initDatabase(cfg)
	defer func() { _ = database.CloseInstance(client) }()

	collections, err := InitCollections(client.Database(cfg.MongoDB_DBName))
	if err != nil {
		log.Fatalf("Failed to initialize collections: %v", err)
	}
	log.Info("Initialized collection registry")

	InitDefaultData(collections, cfg)

	notifier := notify.New(cfg)
	defer notifier.Close()

	r := apirouter.NewRouter(collections, cfg, notifier)
	app, err := InitFiberApp(cfg, r, mongoPinger{client: client})
	if err != nil {
		log.Fatalf("Failed to initialize routes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, app, cfg); err != nil {
		logger.WithError(err).Error("Error in Fiber Listen")
	}
	if count, err := collections.ClearAll(nil); err == nil {
		log.Infof("Released %d collections", count)
	}
	log.Info("Server stopped")
}
