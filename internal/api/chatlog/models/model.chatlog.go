package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò hợp lệ của một lượt chat
const (
	RoleUser  = "user"
	RoleModel = "model"

	DefaultPlatform = "web"
)

// ChatLog là một lượt hội thoại giữa khách và chatbot trên website
type ChatLog struct {
	ID          primitive.ObjectID `json:"_id,omitzero" bson:"_id,omitempty"`
	Role        string             `json:"role" bson:"role"`
	Text        string             `json:"text" bson:"text"`
	SessionDate time.Time          `json:"sessionDate" bson:"sessionDate"`
	Platform    string             `json:"platform" bson:"platform"`
	Read        bool               `json:"read" bson:"read"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
