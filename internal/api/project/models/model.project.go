// Package models chứa các model thuộc domain Project.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project là một dự án hiển thị trên portfolio.
// ID là business key do client cung cấp, khác với _id của MongoDB.
type Project struct {
	MongoID     primitive.ObjectID `json:"_id,omitzero" bson:"_id,omitempty"`
	ID          string             `json:"id" bson:"id" index:"unique"`
	Title       string             `json:"title" bson:"title"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image" bson:"image"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Role        string             `json:"role,omitempty" bson:"role,omitempty"`
	Year        string             `json:"year,omitempty" bson:"year,omitempty"`
	Client      string             `json:"client,omitempty" bson:"client,omitempty"`
	Gallery     []string           `json:"gallery" bson:"gallery"`
	Order       int                `json:"order" bson:"order" index:"single"`
	Likes       int                `json:"likes" bson:"likes"`
	Comments    []Comment          `json:"comments" bson:"comments"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Comment là bình luận nhúng trong Project
type Comment struct {
	ID        CommentID `json:"_id" bson:"_id"`
	Author    string    `json:"author" bson:"author"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	Read      bool      `json:"read" bson:"read"`
}

// Normalize thay slice nil bằng slice rỗng để JSON trả về [] thay vì null
func (p *Project) Normalize() {
	if p.Gallery == nil {
		p.Gallery = []string{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}
