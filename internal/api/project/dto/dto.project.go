package projectdto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexString nhận cả chuỗi lẫn số trong JSON (ví dụ "year": 2024 hoặc "year": "2024")
type FlexString string

// UnmarshalJSON chấp nhận string, number; null giữ giá trị rỗng
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

// ProjectUpsertInput dùng cho POST /projects (tạo mới hoặc cập nhật theo id).
// Field nil nghĩa là client không gửi, giá trị đang lưu được giữ nguyên.
type ProjectUpsertInput struct {
	ID          FlexString  `json:"id"`
	Title       *string     `json:"title"`
	Category    *string     `json:"category"`
	Image       *string     `json:"image"`
	Description *string     `json:"description"`
	Role        *string     `json:"role"`
	Year        *FlexString `json:"year"`
	Client      *string     `json:"client"`
	Gallery     *[]string   `json:"gallery"`
	Order       *int        `json:"order"`
}

// BusinessKey trả về id đã trim
func (in *ProjectUpsertInput) BusinessKey() string {
	return strings.TrimSpace(string(in.ID))
}

// SetFields trả về các field client đã gửi, dùng cho $set
func (in *ProjectUpsertInput) SetFields() map[string]interface{} {
	fields := map[string]interface{}{}
	putString := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	putString("title", in.Title)
	putString("category", in.Category)
	putString("image", in.Image)
	putString("description", in.Description)
	putString("role", in.Role)
	putString("client", in.Client)
	if in.Year != nil {
		fields["year"] = string(*in.Year)
	}
	if in.Gallery != nil {
		gallery := *in.Gallery
		if gallery == nil {
			gallery = []string{}
		}
		fields["gallery"] = gallery
	}
	if in.Order != nil {
		fields["order"] = *in.Order
	}
	return fields
}

// MissingForCreate trả về các field bắt buộc khi tạo mới mà client chưa gửi (hoặc gửi rỗng)
func (in *ProjectUpsertInput) MissingForCreate() []string {
	var missing []string
	check := func(name string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, name)
		}
	}
	check("title", in.Title)
	check("category", in.Category)
	check("image", in.Image)
	return missing
}

// CommentCreateInput dùng cho POST /projects/:id/comment
type CommentCreateInput struct {
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

// ReorderInput nhận một trong hai dạng body:
// {"projects":[{"id":"a"},...]} hoặc {"ids":["a",...]}
type ReorderInput struct {
	Projects []struct {
		ID FlexString `json:"id"`
	} `json:"projects"`
	IDs []FlexString `json:"ids"`
}

// OrderedIDs trả về danh sách id theo thứ tự mới. "projects" được ưu tiên nếu có cả hai.
func (in *ReorderInput) OrderedIDs() []string {
	ids := make([]string, 0, len(in.Projects)+len(in.IDs))
	if len(in.Projects) > 0 {
		for _, p := range in.Projects {
			ids = append(ids, strings.TrimSpace(string(p.ID)))
		}
		return ids
	}
	for _, id := range in.IDs {
		ids = append(ids, strings.TrimSpace(string(id)))
	}
	return ids
}
