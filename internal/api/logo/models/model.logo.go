// Package models chứa model logo khách hàng.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientLogo là logo của một khách hàng/đối tác hiển thị trên trang chủ
type ClientLogo struct {
	ID        primitive.ObjectID `json:"_id,omitzero" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	URL       string             `json:"url" bson:"url"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
}
