// Package notify gửi email thông báo cho chủ portfolio khi có tin nhắn liên hệ mới.
// Email được gửi trong một goroutine nền, request không phải chờ SMTP.
package notify

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/mehedi2283/nobelMan-server/config"
	"github.com/mehedi2283/nobelMan-server/internal/logger"
	"github.com/mehedi2283/nobelMan-server/internal/utility"
)

// Notifier nhận sự kiện tin nhắn mới
type Notifier interface {
	NotifyNewMessage(fields map[string]interface{})
	Close()
}

// Sender gửi email; *gomail.Dialer thỏa mãn interface này
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Noop bỏ qua mọi thông báo (khi chưa cấu hình SMTP)
type Noop struct{}

// NotifyNewMessage không làm gì
func (Noop) NotifyNewMessage(map[string]interface{}) {}

// Close không có tài nguyên để giải phóng
func (Noop) Close() {}

// MailNotifier đưa email vào queue có buffer và gửi tuần tự bằng một worker
type MailNotifier struct {
	sender Sender
	from   string
	to     string

	queue  chan *gomail.Message
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// New tạo notifier theo cấu hình. Thiếu SMTP_HOST hoặc NOTIFY_EMAIL thì trả về Noop.
func New(cfg *config.Configuration) Notifier {
	if cfg == nil || !cfg.MailEnabled() {
		return Noop{}
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	if from == "" {
		from = cfg.NotifyEmail
	}
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return NewMailNotifier(dialer, from, cfg.NotifyEmail, 100)
}

// NewMailNotifier tạo notifier và khởi động worker gửi mail
func NewMailNotifier(sender Sender, from, to string, bufferSize int) *MailNotifier {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	n := &MailNotifier{
		sender: sender,
		from:   from,
		to:     to,
		queue:  make(chan *gomail.Message, bufferSize),
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// NotifyNewMessage không block: queue đầy hoặc notifier đã đóng thì thông báo bị bỏ
func (n *MailNotifier) NotifyNewMessage(fields map[string]interface{}) {
	msg := n.buildMessage(fields)

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	select {
	case n.queue <- msg:
	default:
		logger.WithModule("notify").Warn("Notification queue is full, dropping email")
	}
}

func (n *MailNotifier) run() {
	defer n.wg.Done()
	log := logger.WithModule("notify")

	for msg := range n.queue {
		utility.GoProtect(func() {
			if err := n.sender.DialAndSend(msg); err != nil {
				log.WithError(err).Error("Failed to send new message notification")
				return
			}
			log.WithField("to", n.to).Debug("New message notification sent")
		})
	}
}

// Close đóng queue và chờ các email còn lại được gửi xong
func (n *MailNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *MailNotifier) buildMessage(fields map[string]interface{}) *gomail.Message {
	subject := "New contact message"
	if name, ok := fields["name"].(string); ok && name != "" {
		subject = fmt.Sprintf("New contact message from %s", name)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", n.to)
	if email, ok := fields["email"].(string); ok && email != "" {
		msg.SetHeader("Reply-To", email)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", formatBody(fields))
	return msg
}

// formatBody liệt kê các field theo thứ tự tên, bỏ qua các field hệ thống
func formatBody(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "_id" || k == "read" || k == "createdAt" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, fields[k])
	}
	fmt.Fprintf(&b, "\nReceived at %s\n", time.Now().Format(time.RFC1123))
	return b.String()
}
