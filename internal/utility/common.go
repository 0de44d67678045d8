package utility

import (
	"fmt"
	"os"
	"runtime/debug"
)

// GoProtect chạy f và bắt panic, để một goroutine nền lỗi không làm dừng cả server
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "Đã bắt lỗi panic: %v\n%s\n", err, debug.Stack())
		}
	}()
	f()
}

// Contains kiểm tra slice có chứa item không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
