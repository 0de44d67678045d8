package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mehedi2283/nobelMan-server/config"
	authmodels "github.com/mehedi2283/nobelMan-server/internal/api/auth/models"
	chatlogmodels "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/models"
	logomodels "github.com/mehedi2283/nobelMan-server/internal/api/logo/models"
	messagemodels "github.com/mehedi2283/nobelMan-server/internal/api/message/models"
	profilemodels "github.com/mehedi2283/nobelMan-server/internal/api/profile/models"
	projectmodels "github.com/mehedi2283/nobelMan-server/internal/api/project/models"
	"github.com/mehedi2283/nobelMan-server/internal/database"
	"github.com/mehedi2283/nobelMan-server/internal/global"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// Hàm khởi tạo cấu hình server
func initConfig() *config.Configuration {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	logger.GetAppLogger().Info("Initialized server config")
	return cfg
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, object_id)
func initValidator() {
	global.InitValidator()
	logger.GetAppLogger().Info("Initialized validator")
}

// collectionIndex gắn collection với model khai báo index của nó
type collectionIndex struct {
	name  string
	model interface{}
}

// indexedCollections liệt kê model khai báo index cho từng collection
func indexedCollections() []collectionIndex {
	names := global.MongoDB_ColNames
	return []collectionIndex{
		{names.Projects, projectmodels.Project{}},
		{names.ClientLogos, logomodels.ClientLogo{}},
		{names.Profiles, profilemodels.Profile{}},
		{names.Messages, messagemodels.MessageIndex{}},
		{names.ChatLogs, chatlogmodels.ChatLog{}},
		{names.Admins, authmodels.Admin{}},
	}
}

// Hàm khởi tạo kết nối database, đảm bảo collections và index
func initDatabase(cfg *config.Configuration) *mongo.Client {
	log := logger.GetAppLogger()

	client, err := database.GetInstance(cfg)
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(cfg.MongoDB_DBName)
	if err := database.EnsureCollections(ctx, db, global.AllCollections()); err != nil {
		log.Fatalf("Failed to ensure collections: %v", err)
	}

	for _, ci := range indexedCollections() {
		// Index lỗi không chặn khởi động, dữ liệu cũ có thể vi phạm unique
		if err := database.CreateIndexes(ctx, db.Collection(ci.name), ci.model); err != nil {
			log.WithError(err).WithField("collection", ci.name).Error("Failed to create indexes")
		}
	}
	log.Info("Ensured database, collections and indexes")
	return client
}

// mongoPinger cho phép health check ping MongoDB
type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
