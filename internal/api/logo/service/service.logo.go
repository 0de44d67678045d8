// Package logosvc chứa nghiệp vụ của logo khách hàng.
package logosvc

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mehedi2283/nobelMan-server/internal/api/base/service"
	logodto "github.com/mehedi2283/nobelMan-server/internal/api/logo/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/logo/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/global"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

// LogoService là cấu trúc chứa các phương thức liên quan đến logo
type LogoService struct {
	*basesvc.BaseServiceMongoImpl[models.ClientLogo]
}

// NewLogoService tạo mới LogoService
func NewLogoService(collection *mongo.Collection) *LogoService {
	return &LogoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ClientLogo](collection, false),
	}
}

// List trả về logo mới nhất trước
func (s *LogoService) List(ctx context.Context) ([]models.ClientLogo, error) {
	return s.Find(ctx, nil, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// Create thêm logo mới; url là bắt buộc
func (s *LogoService) Create(ctx context.Context, input *logodto.LogoCreateInput) (models.ClientLogo, error) {
	input.URL = strings.TrimSpace(input.URL)
	if err := global.ValidateStruct(input); err != nil {
		return models.ClientLogo{}, err
	}
	logo := models.ClientLogo{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(input.Name),
		URL:       input.URL,
		CreatedAt: time.Now(),
	}
	return s.InsertOne(ctx, logo)
}

// Delete xóa logo theo _id; id sai định dạng trả về 400, không có logo cũng không báo lỗi
func (s *LogoService) Delete(ctx context.Context, id string) error {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return err
	}
	_, err = s.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// BulkDelete xóa nhiều logo trong một lệnh deleteMany và trả về số logo đã xóa
func (s *LogoService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, common.NewValidationError("ids must be a non-empty array")
	}
	oids, err := utility.StringArray2ObjectIDArray(ids)
	if err != nil {
		return 0, err
	}
	return s.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
}
