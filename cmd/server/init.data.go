package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mehedi2283/nobelMan-server/config"
	authsvc "github.com/mehedi2283/nobelMan-server/internal/api/auth/service"
	"github.com/mehedi2283/nobelMan-server/internal/global"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
	"github.com/mehedi2283/nobelMan-server/internal/registry"
)

// InitDefaultData tạo dữ liệu mặc định: tài khoản admin khi chưa có.
// Lỗi chỉ được log, server vẫn khởi động.
func InitDefaultData(collections *registry.Registry[*mongo.Collection], cfg *config.Configuration) {
	log := logger.WithModule("init")

	coll, err := collections.MustGet(global.MongoDB_ColNames.Admins)
	if err != nil {
		log.WithError(err).Error("Admin collection not registered, skip seeding")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	created, err := authsvc.NewAdminService(coll).SeedDefault(ctx, cfg.AdminDefaultEmail, cfg.AdminDefaultPassword)
	switch {
	case err != nil:
		log.WithError(err).Error("Failed to seed default admin")
	case created:
		log.WithField("email", cfg.AdminDefaultEmail).Info("Default admin created")
	default:
		log.Debug("Admin account already exists")
	}
}
