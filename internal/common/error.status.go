package common

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	StatusOK                  = 200 // Thành công
	StatusBadRequest          = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized        = 401 // Sai thông tin đăng nhập
	StatusNotFound            = 404 // Không tìm thấy tài nguyên
	StatusConflict            = 409 // Xung đột dữ liệu (trùng unique index)
	StatusTooManyRequests     = 429 // Quá nhiều yêu cầu
	StatusInternalServerError = 500 // Lỗi server / store
	StatusServiceUnavailable  = 503 // Không kết nối được store
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: VAL_001)
	Category    string // Phân loại lỗi (ví dụ: Validation)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	ErrCodeInternalServer = ErrorCode{Code: "SYS_001", Category: "System", Description: "Lỗi hệ thống nội bộ"}

	ErrCodeAuthCredentials = ErrorCode{Code: "AUTH_001", Category: "Authentication", Description: "Lỗi thông tin đăng nhập"}

	ErrCodeValidationInput  = ErrorCode{Code: "VAL_001", Category: "Validation", Description: "Lỗi dữ liệu đầu vào"}
	ErrCodeValidationFormat = ErrorCode{Code: "VAL_002", Category: "Validation", Description: "Lỗi định dạng dữ liệu"}

	ErrCodeDatabase           = ErrorCode{Code: "DB", Category: "Database", Description: "Lỗi cơ sở dữ liệu chung"}
	ErrCodeDatabaseConnection = ErrorCode{Code: "DB_001", Category: "Database", Description: "Lỗi kết nối cơ sở dữ liệu"}
	ErrCodeDatabaseQuery      = ErrorCode{Code: "DB_002", Category: "Database", Description: "Lỗi truy vấn dữ liệu"}
)

// Error định nghĩa cấu trúc lỗi chi tiết.
// Message là nội dung trả về cho client trong body {"message": ...}
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi (lỗi gốc của driver...)
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Unwrap trả về lỗi gốc nếu Details là error
func (e *Error) Unwrap() error {
	if err, ok := e.Details.(error); ok {
		return err
	}
	return nil
}

// Is so sánh theo mã lỗi và status, để errors.Is(err, ErrNotFound) khớp cả khi message đã được tùy biến
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code.Code == t.Code.Code && e.StatusCode == t.StatusCode
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Invalid credentials", StatusUnauthorized, nil)

	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Invalid input", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Invalid request body", StatusBadRequest, nil)
	ErrInvalidID     = NewError(ErrCodeValidationFormat, "Invalid id", StatusBadRequest, nil)

	ErrNotFound  = NewError(ErrCodeDatabaseQuery, "Not found", StatusNotFound, nil)
	ErrDuplicate = NewError(ErrCodeDatabaseQuery, "Duplicate key", StatusConflict, nil)
)

// NewValidationError tạo lỗi 400 với message cụ thể
func NewValidationError(message string) error {
	return NewError(ErrCodeValidationInput, message, StatusBadRequest, nil)
}

// NewNotFoundError tạo lỗi 404 với message cụ thể (ví dụ "Project not found")
func NewNotFoundError(message string) error {
	return NewError(ErrCodeDatabaseQuery, message, StatusNotFound, nil)
}

// ConvertMongoError chuyển đổi lỗi MongoDB sang lỗi hệ thống.
// Lỗi store được trả về với message gốc của driver.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Lỗi đã được phân loại thì giữ nguyên
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return NewError(ErrDuplicate.(*Error).Code, err.Error(), StatusConflict, err)
	}
	if mongo.IsNetworkError(err) {
		return NewError(ErrCodeDatabaseConnection, err.Error(), StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabase, err.Error(), StatusInternalServerError, err)
}

// StatusOf trả về HTTP status tương ứng với lỗi, mặc định 500
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return StatusInternalServerError
}

// MissingFieldsError tạo lỗi 400 liệt kê các trường bắt buộc còn thiếu
func MissingFieldsError(fields []string) error {
	return NewError(ErrCodeValidationInput, "Missing required fields: "+strings.Join(fields, ", "), StatusBadRequest, fields)
}
