package server

import (
	"errors"

	"github.com/NeuralTrust/MailSlot/pkg/domain"
	"github.com/NeuralTrust/MailSlot/pkg/handlers/http/response"
	"github.com/NeuralTrust/MailSlot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const serverErrorPrefix = "Server error: "

// NewErrorHandler renders handler errors as JSON error envelopes.
// Client input errors become 400, fiber errors keep their code, anything
// else is a 500. Preflight requests only get the status line.
//
// It also runs for requests fasthttp rejects before routing, so it applies
// the response headers itself.
func NewErrorHandler(logger *logrus.Logger, headers ...middleware.HeaderSetter) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		for _, h := range headers {
			h.SetHeaders(c)
		}

		if mapped, ok := mapHeaderReadError(c, err); ok {
			logger.WithError(mapped).Warn("Rejected request with malformed headers")
			err = mapped
		}

		code, message := classify(err)
		if code >= fiber.StatusInternalServerError {
			logger.WithError(err).WithField("path", c.Path()).Error("Internal server error")
		}

		if c.Method() == fiber.MethodOptions {
			c.Status(code)
			return nil
		}
		return c.Status(code).JSON(response.NewErrorOutput(message))
	}
}

func classify(err error) (int, string) {
	var clientErr *domain.ClientInputError
	if errors.As(err, &clientErr) {
		return fiber.StatusBadRequest, clientErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, serverErrorPrefix + fiberErr.Message
		}
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, serverErrorPrefix + err.Error()
}
