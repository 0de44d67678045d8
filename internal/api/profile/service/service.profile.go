// Package profilesvc chứa nghiệp vụ của profile singleton.
package profilesvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mehedi2283/nobelMan-server/internal/api/base/service"
	models "github.com/mehedi2283/nobelMan-server/internal/api/profile/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

// ProfileService là cấu trúc chứa các phương thức liên quan đến profile
type ProfileService struct {
	*basesvc.BaseServiceMongoImpl[models.Profile]
}

// NewProfileService tạo mới ProfileService
func NewProfileService(collection *mongo.Collection) *ProfileService {
	return &ProfileService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Profile](collection, true),
	}
}

func mainFilter() bson.M {
	return bson.M{"singletonKey": models.MainKey}
}

// legacyFilter khớp document profile tạo trước khi có singletonKey
func legacyFilter() bson.M {
	return bson.M{"singletonKey": bson.M{"$exists": false}}
}

// decodeWithDefaults decode vào profile mặc định, field thiếu trong document giữ giá trị mặc định
func decodeWithDefaults(result *mongo.SingleResult) (models.Profile, error) {
	profile := models.DefaultProfile()
	if err := result.Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Profile{}, common.ErrNotFound
		}
		return models.Profile{}, common.ConvertMongoError(err)
	}
	return profile, nil
}

// Get trả về profile đã lưu, hoặc profile mặc định nếu chưa có. Đọc không tạo document.
func (s *ProfileService) Get(ctx context.Context) (models.Profile, error) {
	profile, err := decodeWithDefaults(s.Collection().FindOne(ctx, mainFilter()))
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return models.Profile{}, err
	}

	legacyOpts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	profile, err = decodeWithDefaults(s.Collection().FindOne(ctx, legacyFilter(), legacyOpts))
	if errors.Is(err, common.ErrNotFound) {
		return models.DefaultProfile(), nil
	}
	return profile, err
}

// adoptLegacy gắn singletonKey cho document profile cũ (nếu có) khi chưa có profile main
func (s *ProfileService) adoptLegacy(ctx context.Context) error {
	count, err := s.CountDocuments(ctx, mainFilter())
	if err != nil || count > 0 {
		return err
	}
	opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "_id", Value: 1}})
	err = s.Collection().FindOneAndUpdate(ctx, legacyFilter(), bson.M{
		"$set": bson.M{"singletonKey": models.MainKey},
	}, opts).Err()
	switch {
	case err == nil:
		logger.WithModule("profile").Info("Legacy profile document adopted as singleton")
		return nil
	case errors.Is(err, mongo.ErrNoDocuments), mongo.IsDuplicateKeyError(err):
		// Không có document cũ, hoặc request khác vừa tạo profile main
		return nil
	default:
		return common.ConvertMongoError(err)
	}
}

// Upsert ghi các field được gửi lên profile duy nhất, tạo mới với giá trị mặc định nếu chưa có.
// Dùng một lệnh findOneAndUpdate upsert trên singletonKey.
func (s *ProfileService) Upsert(ctx context.Context, fields map[string]interface{}) (models.Profile, error) {
	if err := s.adoptLegacy(ctx); err != nil {
		return models.Profile{}, err
	}

	defaults, err := utility.ToMap(models.DefaultProfile())
	if err != nil {
		return models.Profile{}, common.NewError(common.ErrCodeInternalServer, err.Error(), common.StatusInternalServerError, err)
	}
	for key := range fields {
		delete(defaults, key)
	}
	now := time.Now()
	defaults["createdAt"] = now

	set := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		set[key] = value
	}
	set["updatedAt"] = now

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := &basesvc.UpdateData{Set: set, SetOnInsert: defaults}
	profile, err := decodeWithDefaults(s.Collection().FindOneAndUpdate(ctx, mainFilter(), update, opts))
	if mongo.IsDuplicateKeyError(err) || errors.Is(err, common.ErrDuplicate) {
		// Hai upsert đồng thời cùng tạo mới: lần thử lại sẽ là update
		profile, err = decodeWithDefaults(s.Collection().FindOneAndUpdate(ctx, mainFilter(), update, opts))
	}
	return profile, err
}
