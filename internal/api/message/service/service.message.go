// Package messagesvc chứa nghiệp vụ tin nhắn liên hệ.
package messagesvc

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mehedi2283/nobelMan-server/internal/api/base/service"
	models "github.com/mehedi2283/nobelMan-server/internal/api/message/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/notify"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

// ErrMessageNotFound trả về khi không có tin nhắn với id đã cho
var ErrMessageNotFound = common.NewNotFoundError("Message not found")

// MessageService là cấu trúc chứa các phương thức liên quan đến tin nhắn
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[models.Message]
	notifier notify.Notifier
}

// NewMessageService tạo mới MessageService. notifier nil thì không gửi thông báo.
func NewMessageService(collection *mongo.Collection, notifier notify.Notifier) *MessageService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Message](collection, false),
		notifier:             notifier,
	}
}

// List trả về tin nhắn mới nhất trước
func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.Find(ctx, nil, options.Find().SetSort(bson.D{{Key: models.FieldCreatedAt, Value: -1}}))
}

// Create lưu tin nhắn với read=false và createdAt hiện tại, sau đó báo cho chủ portfolio
func (s *MessageService) Create(ctx context.Context, fields map[string]interface{}) (models.Message, error) {
	msg := make(models.Message, len(fields)+3)
	for key, value := range fields {
		msg[key] = value
	}
	msg[models.FieldID] = primitive.NewObjectID()
	msg[models.FieldRead] = false
	msg[models.FieldCreatedAt] = time.Now()

	saved, err := s.InsertOne(ctx, msg)
	if err != nil {
		return nil, err
	}
	s.notifier.NotifyNewMessage(saved)
	return saved, nil
}

// MarkRead đặt read=true
func (s *MessageService) MarkRead(ctx context.Context, id string) (models.Message, error) {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	msg, err := s.UpdateById(ctx, oid, &basesvc.UpdateData{
		Set: map[string]interface{}{models.FieldRead: true},
	})
	if errors.Is(err, common.ErrNotFound) {
		return nil, ErrMessageNotFound
	}
	return msg, err
}

// Delete xóa tin nhắn; không có tin nhắn cũng không báo lỗi
func (s *MessageService) Delete(ctx context.Context, id string) error {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return err
	}
	_, err = s.DeleteOne(ctx, bson.M{models.FieldID: oid})
	return err
}
