package messagedto

import (
	"strings"

	models "github.com/mehedi2283/nobelMan-server/internal/api/message/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
)

// MessageCreateInput là body của POST /messages: một JSON object bất kỳ
type MessageCreateInput map[string]interface{}

// Fields trả về các field của client, bỏ các field hệ thống quản lý.
// Tên field bắt đầu bằng '$' hoặc chứa '.' không được MongoDB chấp nhận nên trả về 400.
func (in MessageCreateInput) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(in))
	for key, value := range in {
		switch key {
		case models.FieldID, models.FieldRead, models.FieldCreatedAt:
			continue
		}
		if key == "" || strings.HasPrefix(key, "$") || strings.Contains(key, ".") {
			return nil, common.NewValidationError("Invalid field name: " + key)
		}
		fields[key] = value
	}
	return fields, nil
}
