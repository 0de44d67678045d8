package chatlogdto

import "time"

// ChatLogCreateInput dùng cho POST /chat-logs
type ChatLogCreateInput struct {
	Role        string     `json:"role" validate:"required,oneof=user model"`
	Text        string     `json:"text" validate:"required"`
	Platform    string     `json:"platform"`
	SessionDate *time.Time `json:"sessionDate,omitempty"`
}
