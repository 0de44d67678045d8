// Package basesvc cung cấp service generic cho việc tương tác với một collection MongoDB.
// Các domain service embed BaseServiceMongoImpl và chỉ viết thêm phần nghiệp vụ riêng.
package basesvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

// UpdateData định nghĩa các toán tử update hay dùng.
// Field rỗng sẽ không được gửi lên MongoDB.
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi upsert tạo mới
	Inc         map[string]interface{} `bson:"$inc,omitempty"`         // Các trường cần tăng
	Push        map[string]interface{} `bson:"$push,omitempty"`        // Thêm phần tử vào array
	Pull        map[string]interface{} `bson:"$pull,omitempty"`        // Xóa phần tử khỏi array
}

// BaseServiceMongoImpl triển khai các thao tác cơ bản trên một collection
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
	timestamps bool // true: tự set updatedAt mỗi lần FindOneAndUpdate
}

// NewBaseServiceMongo tạo service cho collection.
// timestamps = true cho các model có updatedAt.
func NewBaseServiceMongo[T any](collection *mongo.Collection, timestamps bool) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
		timestamps: timestamps,
	}
}

// Collection trả về collection MongoDB
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// InsertOne thêm document. Caller tự gán _id và timestamps cho model.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T
	if _, err := s.collection.InsertOne(ctx, data); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return data, nil
}

// FindOne tìm một document, trả về common.ErrNotFound nếu không có
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	if err := s.collection.FindOne(ctx, filter, opts).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find tìm nhiều document. Không có kết quả thì trả về slice rỗng (JSON là []).
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindOneAndUpdate cập nhật nguyên tử và trả về document SAU khi cập nhật.
// Không khớp document nào (và không upsert) thì trả về common.ErrNotFound.
func (s *BaseServiceMongoImpl[T]) FindOneAndUpdate(ctx context.Context, filter interface{}, update *UpdateData, opts *options.FindOneAndUpdateOptions) (T, error) {
	var result T
	if update == nil {
		update = &UpdateData{}
	}
	if opts == nil {
		opts = options.FindOneAndUpdate()
	}
	opts.SetReturnDocument(options.After)

	if s.timestamps {
		if update.Set == nil {
			update.Set = map[string]interface{}{}
		}
		update.Set["updatedAt"] = time.Now()
	}

	err := s.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return result, common.ErrNotFound
		}
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// UpdateById cập nhật document theo _id
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update *UpdateData) (T, error) {
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, nil)
}

// DeleteOne xóa một document, trả về số document đã xóa (0 hoặc 1)
func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// DeleteMany xóa các document khớp filter
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// BulkWrite gửi nhiều thao tác trong một lệnh (ordered)
func (s *BaseServiceMongoImpl[T]) BulkWrite(ctx context.Context, models []mongo.WriteModel) (*mongo.BulkWriteResult, error) {
	if len(models) == 0 {
		return &mongo.BulkWriteResult{}, nil
	}
	result, err := s.collection.BulkWrite(ctx, models)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return result, nil
}

// CountDocuments đếm document khớp filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}
