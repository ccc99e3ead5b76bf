package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const headerRequestID = "X-Request-ID"

// accessLog logs every request with a request id, reusing the caller's id
// when one is supplied.
func accessLog(logger *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(headerRequestID, rid)

		err := c.Next()

		logger.Info("http request",
			zap.String("rid", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

// recoverPanics converts handler panics into a plain 500 envelope so a bad
// upload can never take the server down.
func recoverPanics(logger *zap.Logger) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r))
				err = respondError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}()

		return c.Next()
	}
}
