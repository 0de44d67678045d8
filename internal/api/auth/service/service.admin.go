// Package authsvc chứa nghiệp vụ đăng nhập và quản lý tài khoản admin.
package authsvc

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	authdto "github.com/mehedi2283/nobelMan-server/internal/api/auth/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/auth/models"
	basesvc "github.com/mehedi2283/nobelMan-server/internal/api/base/service"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
)

// ErrCredentialsRequired trả về khi thiếu email hoặc password
var ErrCredentialsRequired = common.NewValidationError("Email and password are required")

// ErrPasswordTooLong trả về khi password vượt quá giới hạn 72 byte của bcrypt
var ErrPasswordTooLong = common.NewValidationError("Password must be at most 72 bytes")

// AdminService là cấu trúc chứa các phương thức liên quan đến admin
type AdminService struct {
	*basesvc.BaseServiceMongoImpl[models.Admin]
	cost int // bcrypt cost
}

// NewAdminService tạo mới AdminService
func NewAdminService(collection *mongo.Collection) *AdminService {
	return &AdminService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Admin](collection, true),
		cost:                 bcrypt.DefaultCost,
	}
}

func mainFilter() bson.M {
	return bson.M{"singletonKey": models.MainKey}
}

// legacyFilter khớp tài khoản admin tạo trước khi có singletonKey
func legacyFilter() bson.M {
	return bson.M{"singletonKey": bson.M{"$exists": false}}
}

// isBcryptHash nhận biết password đã được hash
func isBcryptHash(password string) bool {
	return strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$")
}

func (s *AdminService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, err.Error(), common.StatusInternalServerError, err)
	}
	return string(hash), nil
}

// Login kiểm tra email và password. Sai thông tin luôn trả về cùng một lỗi 401.
func (s *AdminService) Login(ctx context.Context, input *authdto.LoginInput) (models.Admin, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return models.Admin{}, ErrCredentialsRequired
	}

	admin, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if errors.Is(err, common.ErrNotFound) {
		return models.Admin{}, common.ErrInvalidCredentials
	}
	if err != nil {
		return models.Admin{}, err
	}

	if isBcryptHash(admin.Password) {
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
			return models.Admin{}, common.ErrInvalidCredentials
		}
		return admin, nil
	}

	// Mật khẩu plaintext từ dữ liệu cũ: chấp nhận rồi hash lại
	if subtle.ConstantTimeCompare([]byte(admin.Password), []byte(input.Password)) != 1 {
		return models.Admin{}, common.ErrInvalidCredentials
	}
	s.rehash(ctx, admin, input.Password)
	return admin, nil
}

// rehash thay password plaintext bằng bcrypt hash. Lỗi chỉ được log, không làm hỏng lần đăng nhập.
func (s *AdminService) rehash(ctx context.Context, admin models.Admin, password string) {
	log := logger.WithModule("auth").WithField("admin_id", admin.ID.Hex())

	hash, err := s.hashPassword(password)
	if err != nil {
		log.WithError(err).Error("Không thể hash lại mật khẩu admin")
		return
	}
	// Điều kiện password cũ tránh ghi đè nếu credentials vừa được đổi
	_, err = s.Collection().UpdateOne(ctx,
		bson.M{"_id": admin.ID, "password": admin.Password},
		bson.M{"$set": bson.M{"password": hash, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.WithError(err).Error("Không thể lưu mật khẩu đã hash")
		return
	}
	log.Info("Legacy plaintext password rehashed")
}

// adoptLegacy gắn singletonKey cho tài khoản admin cũ (nếu có) khi chưa có admin main
func (s *AdminService) adoptLegacy(ctx context.Context) error {
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
		logger.WithModule("auth").Info("Legacy admin document adopted as singleton")
		return nil
	case errors.Is(err, mongo.ErrNoDocuments), mongo.IsDuplicateKeyError(err):
		return nil
	default:
		return common.ConvertMongoError(err)
	}
}

// UpdateCredentials ghi đè email và password của admin duy nhất, tạo mới nếu chưa có
func (s *AdminService) UpdateCredentials(ctx context.Context, input *authdto.UpdateCredentialsInput) (models.Admin, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return models.Admin{}, ErrCredentialsRequired
	}
	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return models.Admin{}, err
	}
	if err := s.adoptLegacy(ctx); err != nil {
		return models.Admin{}, err
	}

	opts := options.FindOneAndUpdate().SetUpsert(true)
	update := func() *basesvc.UpdateData {
		return &basesvc.UpdateData{
			Set:         map[string]interface{}{"email": email, "password": hash},
			SetOnInsert: map[string]interface{}{"createdAt": time.Now()},
		}
	}
	admin, err := s.FindOneAndUpdate(ctx, mainFilter(), update(), opts)
	if errors.Is(err, common.ErrDuplicate) {
		// Hai request đồng thời cùng tạo admin main: lần thử lại sẽ là update
		admin, err = s.FindOneAndUpdate(ctx, mainFilter(), update(), opts)
	}
	return admin, err
}

// SeedDefault tạo admin mặc định khi chưa có tài khoản nào. Trả về true nếu đã tạo mới.
func (s *AdminService) SeedDefault(ctx context.Context, email, password string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, nil
	}
	if err := s.adoptLegacy(ctx); err != nil {
		return false, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return false, err
	}
	now := time.Now()
	result, err := s.Collection().UpdateOne(ctx, mainFilter(), bson.M{
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID(),
			"email":     email,
			"password":  hash,
			"createdAt": now,
			"updatedAt": now,
		},
	}, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Email đã thuộc về một tài khoản khác, hoặc instance khác vừa seed
		return false, nil
	}
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return result.UpsertedCount > 0, nil
}
