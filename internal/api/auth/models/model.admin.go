// Package models chứa model tài khoản admin.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MainKey là giá trị singletonKey của tài khoản admin duy nhất
const MainKey = "main"

// Admin là tài khoản quản trị duy nhất của dashboard.
// Password lưu dạng bcrypt hash; document cũ có thể còn mật khẩu dạng plaintext cho tới lần đăng nhập kế tiếp.
type Admin struct {
	ID           primitive.ObjectID `json:"_id,omitzero" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email" index:"unique"`
	Password     string             `json:"-" bson:"password"`
	SingletonKey string             `json:"-" bson:"singletonKey,omitempty" index:"unique,sparse"`
	CreatedAt    time.Time          `json:"createdAt,omitzero" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt,omitzero" bson:"updatedAt,omitempty"`
}
