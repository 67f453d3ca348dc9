package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type preflightHandler struct {
	logger *logrus.Logger
}

func NewPreflightHandler(logger *logrus.Logger) Handler {
	return &preflightHandler{
		logger: logger,
	}
}

// Handle answers CORS preflight requests with headers only. The CORS and
// security headers are set by middleware before this runs.
func (h *preflightHandler) Handle(c *fiber.Ctx) error {
	h.logger.WithField("path", c.Path()).Debug("Handled OPTIONS preflight request")
	c.Status(fiber.StatusOK)
	return nil
}
