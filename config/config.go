package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin cơ sở dữ liệu, CORS, rate limit, admin mặc định và SMTP
type Configuration struct {
	Address               string `env:"PORT" envDefault:"5000"`                    // Cổng server
	MongoDB_ConnectionURI string `env:"MONGO_URI,required"`                        // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"portfolio"`     // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"false"`     // Bật/tắt rate limiting
	StoreTimeoutSeconds   int    `env:"STORE_TIMEOUT_SECONDS" envDefault:"10"`     // Timeout cho mỗi thao tác MongoDB trong request (0 = không giới hạn)
	ChatLogLimit          int64  `env:"CHAT_LOG_LIMIT" envDefault:"200"`           // Số chat log tối đa trả về

	// Admin mặc định (chỉ dùng khi collection admins trống)
	AdminDefaultEmail    string `env:"ADMIN_DEFAULT_EMAIL" envDefault:"admin@nobelman.dev"`
	AdminDefaultPassword string `env:"ADMIN_DEFAULT_PASSWORD" envDefault:"admin123"`

	// SMTP để gửi thông báo khi có tin nhắn liên hệ mới (optional)
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	NotifyEmail  string `env:"NOTIFY_EMAIL"`
}

// StoreTimeout trả về timeout cho thao tác store, 0 nghĩa là không giới hạn
func (c *Configuration) StoreTimeout() time.Duration {
	if c.StoreTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}

// MailEnabled cho biết đã đủ cấu hình SMTP để gửi thông báo hay chưa
func (c *Configuration) MailEnabled() bool {
	return c.SMTPHost != "" && c.NotifyEmail != ""
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên thư mục cha
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env (nếu có) rồi từ biến môi trường.
// File env là tùy chọn: khi deploy, biến môi trường của process là đủ.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			// godotenv.Load không ghi đè biến đã có trong môi trường
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("không thể load file env tại %s: %w", envPath, err)
			}
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("lỗi khi parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Configuration) validate() error {
	if c.MongoDB_ConnectionURI == "" {
		return errors.New("MONGO_URI không được để trống")
	}
	if c.Address == "" {
		return errors.New("PORT không được để trống")
	}
	if c.MongoDB_DBName == "" {
		return errors.New("MONGODB_DBNAME không được để trống")
	}
	if c.ChatLogLimit <= 0 {
		return fmt.Errorf("CHAT_LOG_LIMIT phải lớn hơn 0, nhận được %d", c.ChatLogLimit)
	}
	return nil
}
