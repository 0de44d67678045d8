package logger

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một hành động audit vào audit logger
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	if rid := requestID(c); rid != "" {
		details["request_id"] = rid
	}

	GetAuditLogger().WithFields(logrus.Fields{
		"action":     action,
		"ip":         c.IP(),
		"user_agent": c.Get(fiber.HeaderUserAgent),
		"details":    details,
		"timestamp":  time.Now(),
	}).Info("Audit log")
}

// LogAuth log các thao tác authentication (login, đổi thông tin đăng nhập)
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action

	LogAction("auth_"+action, c, details)
}

// LogCRUD log các thao tác ghi dữ liệu của admin
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx) {
	LogAction("crud_"+operation, c, map[string]interface{}{
		"operation":     operation,
		"resource_type": resourceType,
		"resource_id":   resourceID,
	})
}
