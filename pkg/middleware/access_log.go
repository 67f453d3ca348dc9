package middleware

import (
	"time"

	"github.com/NeuralTrust/MailSlot/pkg/utils"
	"github.com/gofiber/fiber/v2"
	fiberUtils "github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type accessLogMiddleware struct {
	logger *logrus.Logger
}

// NewAccessLogMiddleware logs one line per request. Errors returned further
// down the chain are rendered here through the app error handler, so the
// logged status is the one the client receives and outer middleware see
// the final response.
func NewAccessLogMiddleware(logger *logrus.Logger) Middleware {
	return &accessLogMiddleware{logger: logger}
}

func (m *accessLogMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				m.logger.WithError(err).Error("failed to render error response")
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		entry := m.logger.WithFields(logrus.Fields{
			"request_id": RequestID(c),
			"method":     c.Method(),
			"path":       fiberUtils.CopyString(c.OriginalURL()),
			"status":     status,
			"latency_ms": time.Since(startTime).Milliseconds(),
			"ip":         c.IP(),
			"origin":     fiberUtils.CopyString(c.Get(fiber.HeaderOrigin)),
			"user_agent": utils.ParseUserAgent(c.Get(fiber.HeaderUserAgent)).String(),
		})
		if chainErr != nil {
			entry = entry.WithError(chainErr)
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
		return nil
	}
}
