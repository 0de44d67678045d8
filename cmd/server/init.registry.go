package main

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mehedi2283/nobelMan-server/internal/global"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
	"github.com/mehedi2283/nobelMan-server/internal/registry"
)

// InitCollections tạo registry và đăng ký tất cả collections MongoDB của ứng dụng
func InitCollections(db *mongo.Database) (*registry.Registry[*mongo.Collection], error) {
	log := logger.WithModule("registry")
	collections := registry.NewRegistry[*mongo.Collection]()

	for _, name := range global.AllCollections() {
		registered, err := collections.Register(name, db.Collection(name))
		if err != nil {
			return nil, fmt.Errorf("failed to register collection %s: %w", name, err)
		}
		if registered {
			log.Debugf("Collection %s registered successfully", name)
		} else {
			log.Warnf("Collection %s already registered", name)
		}
	}
	log.WithField("collections", collections.Names()).Info("Collection registry ready")
	return collections, nil
}
