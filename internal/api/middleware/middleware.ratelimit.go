package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"

	"github.com/mehedi2283/nobelMan-server/internal/common"
)

// WriteLimiter giới hạn số request ghi công khai (like, comment, tin nhắn, chat, login) theo IP.
// max <= 0 trả về nil: không giới hạn.
func WriteLimiter(max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return JSONResponse(c, common.StatusTooManyRequests, fiber.Map{
				"message": "Too many requests, please try again later",
			})
		},
		// Preflight không tính vào quota
		Next: func(c fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
	})
}
