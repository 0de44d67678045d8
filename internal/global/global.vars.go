package global

import (
	"github.com/go-playground/validator/v10"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB.
// Tên giữ nguyên như dữ liệu đã có sẵn trong database portfolio.
type MongoDB_CollectionName struct {
	Projects    string // Tên collection cho project (kèm like, comment)
	ClientLogos string // Tên collection cho logo khách hàng
	Profiles    string // Tên collection cho profile (singleton)
	Messages    string // Tên collection cho tin nhắn liên hệ
	ChatLogs    string // Tên collection cho lịch sử chat
	Admins      string // Tên collection cho tài khoản admin (singleton)
}

// Các biến toàn cục
var Validate *validator.Validate // Biến để xác thực dữ liệu

// MongoDB_ColNames tên các collection
var MongoDB_ColNames = MongoDB_CollectionName{
	Projects:    "Project_Collection",
	ClientLogos: "clientlogos",
	Profiles:    "profiles",
	Messages:    "messages",
	ChatLogs:    "chatlogs",
	Admins:      "admins",
}

// AllCollections trả về danh sách tên tất cả collections
func AllCollections() []string {
	c := MongoDB_ColNames
	return []string{c.Projects, c.ClientLogos, c.Profiles, c.Messages, c.ChatLogs, c.Admins}
}
