package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// FilterHook lọc log entries theo module, HTTP method và level.
// Entry bị loại được đánh dấu bằng field "_filtered", AsyncHook sẽ bỏ qua nó.
type FilterHook struct {
	allowedModules  map[string]bool
	allowedMethods  map[string]bool
	allowedLogTypes map[string]bool
}

// NewFilterHook tạo filter hook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{
		allowedModules:  parseFilter(cfg.FilterModules),
		allowedMethods:  parseFilter(cfg.FilterMethods),
		allowedLogTypes: parseFilter(cfg.FilterLogTypes),
	}
}

// parseFilter parse "a,b,c" thành set; rỗng hoặc "*" trả về nil (cho phép tất cả)
func parseFilter(filterStr string) map[string]bool {
	filterStr = strings.TrimSpace(filterStr)
	if filterStr == "" || filterStr == "*" {
		return nil
	}

	result := make(map[string]bool)
	for _, v := range strings.Split(filterStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result[strings.ToLower(v)] = true
		}
	}
	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry không khớp filter
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	if h.allowedLogTypes != nil && !h.allowedLogTypes[entry.Level.String()] {
		entry.Data[filteredKey] = true
		return nil
	}

	// Entry không có field module/method thì không bị lọc theo field đó
	if module, ok := entry.Data["module"].(string); ok && module != "" && h.allowedModules != nil {
		if !h.allowedModules[strings.ToLower(module)] {
			entry.Data[filteredKey] = true
			return nil
		}
	}
	if method, ok := entry.Data["method"].(string); ok && method != "" && h.allowedMethods != nil {
		if !h.allowedMethods[strings.ToLower(method)] {
			entry.Data[filteredKey] = true
			return nil
		}
	}
	return nil
}
