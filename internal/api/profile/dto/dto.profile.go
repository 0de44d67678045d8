package profiledto

import (
	"encoding/json"
	"fmt"

	models "github.com/mehedi2283/nobelMan-server/internal/api/profile/models"
	"github.com/mehedi2283/nobelMan-server/internal/common"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

// ProfileUpdateInput là body của POST /profile: object với các field cần cập nhật.
// Field không thuộc profile bị bỏ qua.
type ProfileUpdateInput map[string]interface{}

// Fields trả về các field hợp lệ đã chuẩn hóa thành string.
// Số được đổi thành chuỗi, null thành chuỗi rỗng; object/array trả về 400.
func (in ProfileUpdateInput) Fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{}, len(in))
	for key, value := range in {
		if !utility.Contains(models.FieldNames, key) {
			continue
		}
		switch v := value.(type) {
		case string:
			fields[key] = v
		case nil:
			fields[key] = ""
		case float64, bool, json.Number:
			fields[key] = fmt.Sprint(v)
		default:
			return nil, common.NewValidationError(fmt.Sprintf("%s must be a string", key))
		}
	}
	return fields, nil
}
