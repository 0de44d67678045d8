package global

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

var initOnce sync.Once

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	initOnce.Do(func() {
		Validate = validator.New()

		// Dùng tên json của field trong thông báo lỗi
		Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		_ = Validate.RegisterValidation("object_id", validateObjectID)
	})
}

// validateObjectID kiểm tra chuỗi hex 24 ký tự của ObjectID
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// ValidateStruct chạy validator trên struct và chuyển lỗi sang lỗi 400 của common
func ValidateStruct(s interface{}) error {
	if Validate == nil {
		InitValidator()
	}
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return common.NewValidationError(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return common.NewError(common.ErrCodeValidationInput, strings.Join(msgs, "; "), common.StatusBadRequest, msgs)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "object_id":
		return fmt.Sprintf("%s is not a valid id", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
