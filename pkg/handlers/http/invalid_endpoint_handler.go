package http

import (
	"github.com/NeuralTrust/MailSlot/pkg/domain"
	"github.com/NeuralTrust/MailSlot/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type invalidEndpointHandler struct {
	logger *logrus.Logger
}

func NewInvalidEndpointHandler(logger *logrus.Logger) Handler {
	return &invalidEndpointHandler{
		logger: logger,
	}
}

// Handle rejects POSTs outside the email path. The body is still validated
// first so that a missing or malformed body is reported as such.
func (h *invalidEndpointHandler) Handle(c *fiber.Ctx) error {
	if _, err := request.ParseEmailRequest(c.Request().Header.ContentLength(), c.Body()); err != nil {
		return err
	}
	h.logger.WithField("path", c.Path()).Warn("Invalid POST endpoint")
	return domain.ErrInvalidEndpoint
}
