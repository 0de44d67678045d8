package utility

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

// ParseObjectID chuyển chuỗi hex thành ObjectID, trả về common.ErrInvalidID nếu sai định dạng
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidID
	}
	return oid, nil
}

// StringArray2ObjectIDArray chuyển mảng hex thành mảng ObjectID.
// Chỉ cần một phần tử sai định dạng là trả về lỗi.
func StringArray2ObjectIDArray(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := ParseObjectID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

// FlexibleIDMatch trả về điều kiện khớp một định danh có thể được lưu
// dưới dạng ObjectID hoặc chuỗi thô (dữ liệu cũ).
func FlexibleIDMatch(id string) interface{} {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$in": bson.A{oid, id}}
	}
	return id
}
