package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentID là định danh của comment dưới dạng chuỗi.
// Trong MongoDB nó được lưu là ObjectID nếu là chuỗi hex hợp lệ, ngược lại là chuỗi thô (dữ liệu cũ).
type CommentID string

// NewCommentID sinh định danh mới từ ObjectID
func NewCommentID() CommentID {
	return CommentID(primitive.NewObjectID().Hex())
}

// MarshalBSONValue ghi ObjectID khi có thể
func (id CommentID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
		return bson.MarshalValue(oid)
	}
	return bson.MarshalValue(string(id))
}

// UnmarshalBSONValue đọc cả ObjectID lẫn chuỗi, luôn trả về dạng chuỗi (hex cho ObjectID)
func (id *CommentID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		oid, ok := raw.ObjectIDOK()
		if !ok {
			return errInvalidCommentID
		}
		*id = CommentID(oid.Hex())
	case bsontype.String:
		s, ok := raw.StringValueOK()
		if !ok {
			return errInvalidCommentID
		}
		*id = CommentID(s)
	case bsontype.Null, bsontype.Undefined:
		*id = ""
	default:
		*id = CommentID(raw.String())
	}
	return nil
}
