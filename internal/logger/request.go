package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về log entry gắn sẵn thông tin request để trace.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(map[string]interface{}{
		"requestId": c.Get("X-Request-ID"),
		"method":    c.Method(),
		"path":      c.Path(),
		"ip":        c.IP(),
	})
}
