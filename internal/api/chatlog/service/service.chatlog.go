// Package chatlogsvc chứa nghiệp vụ lịch sử chat.
package chatlogsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mehedi2283/nobelMan-server/internal/api/base/service"
	chatlogdto "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/chatlog/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/global"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

// DefaultListLimit là số chat log tối đa trả về khi không cấu hình
const DefaultListLimit int64 = 200

// ErrChatLogNotFound trả về khi không có chat log với id đã cho
var ErrChatLogNotFound = common.NewNotFoundError("Chat log not found")

// ChatLogService là cấu trúc chứa các phương thức liên quan đến chat log
type ChatLogService struct {
	*basesvc.BaseServiceMongoImpl[models.ChatLog]
	limit int64
}

// NewChatLogService tạo mới ChatLogService; limit <= 0 dùng DefaultListLimit
func NewChatLogService(collection *mongo.Collection, limit int64) *ChatLogService {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return &ChatLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ChatLog](collection, true),
		limit:                limit,
	}
}

// List trả về các chat log mới nhất, tối đa limit bản ghi
func (s *ChatLogService) List(ctx context.Context) ([]models.ChatLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(s.limit)
	return s.Find(ctx, nil, opts)
}

// Append thêm một lượt chat
func (s *ChatLogService) Append(ctx context.Context, input *chatlogdto.ChatLogCreateInput) (models.ChatLog, error) {
	input.Role = strings.TrimSpace(input.Role)
	input.Platform = strings.TrimSpace(input.Platform)
	if err := global.ValidateStruct(input); err != nil {
		return models.ChatLog{}, err
	}

	now := time.Now()
	log := models.ChatLog{
		ID:          primitive.NewObjectID(),
		Role:        input.Role,
		Text:        input.Text,
		SessionDate: now,
		Platform:    input.Platform,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.SessionDate != nil && !input.SessionDate.IsZero() {
		log.SessionDate = *input.SessionDate
	}
	if log.Platform == "" {
		log.Platform = models.DefaultPlatform
	}
	return s.InsertOne(ctx, log)
}

// MarkRead đặt read=true
func (s *ChatLogService) MarkRead(ctx context.Context, id string) (models.ChatLog, error) {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return models.ChatLog{}, err
	}
	log, err := s.UpdateById(ctx, oid, &basesvc.UpdateData{
		Set: map[string]interface{}{"read": true},
	})
	if errors.Is(err, common.ErrNotFound) {
		return models.ChatLog{}, ErrChatLogNotFound
	}
	return log, err
}
