package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển struct (hoặc map) thành map theo bson tag.
// Field có `omitempty` và giá trị rỗng sẽ không có trong kết quả,
// nên DTO dạng con trỏ chỉ sinh ra các field client thực sự gửi lên.
func ToMap(s interface{}) (map[string]interface{}, error) {
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	var out map[string]interface{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	return out, nil
}
