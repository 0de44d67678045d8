// Package projectsvc chứa nghiệp vụ của domain Project: upsert theo business key,
// like, comment nhúng và sắp xếp lại thứ tự hiển thị.
package projectsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/mehedi2283/nobelMan-server/internal/api/base/service"
	projectdto "github.com/mehedi2283/nobelMan-server/internal/api/project/dto"
	models "github.com/mehedi2283/nobelMan-server/internal/api/project/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/global"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

var (
	// ErrProjectNotFound trả về khi không có project với id đã cho
	ErrProjectNotFound = common.NewNotFoundError("Project not found")
	// ErrCommentNotFound trả về khi project có nhưng comment không có
	ErrCommentNotFound = common.NewNotFoundError("Comment not found")
	// ErrCommentRequired trả về khi thiếu author hoặc text
	ErrCommentRequired = common.NewValidationError("Author and text required")
)

// ProjectService là cấu trúc chứa các phương thức liên quan đến project
type ProjectService struct {
	*basesvc.BaseServiceMongoImpl[models.Project]
}

// NewProjectService tạo mới ProjectService
func NewProjectService(collection *mongo.Collection) *ProjectService {
	return &ProjectService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Project](collection, true),
	}
}

// List trả về tất cả project theo order tăng dần
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.Find(ctx, nil, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Normalize()
	}
	return projects, nil
}

// nextOrder trả về max(order)+1, hoặc 0 khi collection trống
func (s *ProjectService) nextOrder(ctx context.Context) (int, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "order", Value: -1}}).
		SetProjection(bson.M{"order": 1})
	last, err := s.FindOne(ctx, nil, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return last.Order + 1, nil
}

// Upsert tạo mới hoặc cập nhật project theo business key id.
// Field không gửi lên được giữ nguyên; likes và comments không bao giờ bị ghi đè qua đây.
func (s *ProjectService) Upsert(ctx context.Context, input *projectdto.ProjectUpsertInput) (models.Project, error) {
	var zero models.Project
	id := input.BusinessKey()
	if id == "" {
		return zero, common.NewValidationError("Project id is required")
	}

	filter := bson.M{"id": id}
	_, err := s.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1}))
	exists := err == nil
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	set := input.SetFields()
	setOnInsert := map[string]interface{}{
		"likes":     0,
		"comments":  []models.Comment{},
		"gallery":   []string{},
		"order":     0,
		"createdAt": time.Now(),
	}

	if !exists {
		if missing := input.MissingForCreate(); len(missing) > 0 {
			return zero, common.MissingFieldsError(missing)
		}
		if input.Order == nil {
			order, err := s.nextOrder(ctx)
			if err != nil {
				return zero, err
			}
			setOnInsert["order"] = order
		}
	}

	// Một path không được xuất hiện ở cả $set và $setOnInsert
	for key := range set {
		delete(setOnInsert, key)
	}

	project, err := s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{
		Set:         set,
		SetOnInsert: setOnInsert,
	}, options.FindOneAndUpdate().SetUpsert(true))
	if err != nil {
		return zero, err
	}
	project.Normalize()
	return project, nil
}

// Like tăng likes thêm 1 một cách nguyên tử
func (s *ProjectService) Like(ctx context.Context, id string) (models.Project, error) {
	project, err := s.FindOneAndUpdate(ctx, bson.M{"id": id}, &basesvc.UpdateData{
		Inc: map[string]interface{}{"likes": 1},
	}, nil)
	return s.result(project, err, ErrProjectNotFound)
}

// AddComment thêm comment mới (read=false) vào cuối danh sách comment
func (s *ProjectService) AddComment(ctx context.Context, id string, input *projectdto.CommentCreateInput) (models.Project, error) {
	// Chỉ trim để kiểm tra rỗng, nội dung lưu giữ nguyên như người dùng nhập
	if strings.TrimSpace(input.Author) == "" || strings.TrimSpace(input.Text) == "" {
		return models.Project{}, ErrCommentRequired
	}
	if err := global.ValidateStruct(input); err != nil {
		return models.Project{}, err
	}

	comment := models.Comment{
		ID:        models.NewCommentID(),
		Author:    input.Author,
		Text:      input.Text,
		CreatedAt: time.Now(),
		Read:      false,
	}
	project, err := s.FindOneAndUpdate(ctx, bson.M{"id": id}, &basesvc.UpdateData{
		Push: map[string]interface{}{"comments": comment},
	}, nil)
	return s.result(project, err, ErrProjectNotFound)
}

// MarkCommentRead đặt read=true cho comment. commentID có thể là hex ObjectID hoặc chuỗi cũ.
func (s *ProjectService) MarkCommentRead(ctx context.Context, id, commentID string) (models.Project, error) {
	filter := bson.M{
		"id":           id,
		"comments._id": utility.FlexibleIDMatch(commentID),
	}
	project, err := s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{"comments.$.read": true},
	}, nil)
	if errors.Is(err, common.ErrNotFound) {
		// Phân biệt project không tồn tại với comment không tồn tại
		count, cerr := s.CountDocuments(ctx, bson.M{"id": id})
		if cerr != nil {
			return models.Project{}, cerr
		}
		if count == 0 {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, ErrCommentNotFound
	}
	return s.result(project, err, ErrProjectNotFound)
}

// DeleteComment xóa comment theo định danh. Comment không tồn tại thì trả về project không đổi.
func (s *ProjectService) DeleteComment(ctx context.Context, id, commentID string) (models.Project, error) {
	project, err := s.FindOneAndUpdate(ctx, bson.M{"id": id}, &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"comments": bson.M{"_id": utility.FlexibleIDMatch(commentID)},
		},
	}, nil)
	return s.result(project, err, ErrProjectNotFound)
}

// Delete xóa project theo id; không có project cũng không báo lỗi
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	_, err := s.DeleteOne(ctx, bson.M{"id": id})
	return err
}

// Reorder gán order = vị trí trong ids bằng một lệnh bulk write.
// Project không có trong ids giữ nguyên order.
func (s *ProjectService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return common.NewValidationError("Project list is required")
	}

	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(ids))
	for index, id := range ids {
		if id == "" {
			return common.NewValidationError("Project id is required")
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": index, "updatedAt": now}}))
	}

	_, err := s.BulkWrite(ctx, writes)
	return err
}

// result chuẩn hóa kết quả FindOneAndUpdate: ErrNotFound được thay bằng lỗi cụ thể của domain
func (s *ProjectService) result(project models.Project, err error, notFound error) (models.Project, error) {
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.Project{}, notFound
		}
		return models.Project{}, err
	}
	project.Normalize()
	return project, nil
}
