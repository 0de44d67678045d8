// Package models chứa model tin nhắn liên hệ.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Message là tin nhắn từ form liên hệ. Các field do client tự do gửi lên,
// hệ thống chỉ quản lý _id, read và createdAt.
type Message = bson.M

// Các field do hệ thống quản lý
const (
	FieldID        = "_id"
	FieldRead      = "read"
	FieldCreatedAt = "createdAt"
)

// MessageIndex chỉ dùng để khai báo index cho collection messages
type MessageIndex struct {
	CreatedAt time.Time `bson:"createdAt" index:"single,order:-1"`
}
