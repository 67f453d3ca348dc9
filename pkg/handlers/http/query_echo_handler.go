package http

import (
	"github.com/NeuralTrust/MailSlot/pkg/common"
	"github.com/NeuralTrust/MailSlot/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type queryEchoHandler struct {
	logger *logrus.Logger
}

func NewQueryEchoHandler(logger *logrus.Logger) Handler {
	return &queryEchoHandler{
		logger: logger,
	}
}

func (h *queryEchoHandler) Handle(c *fiber.Ctx) error {
	receivedData := h.getQueryParams(c)
	if len(receivedData) > 0 {
		h.logger.WithField("received_data", receivedData).Info("Received GET data")
	} else {
		h.logger.Info("Received GET request with no query parameters")
	}

	return c.Status(fiber.StatusOK).JSON(response.QueryEchoOutput{
		Status:       common.StatusSuccess,
		Message:      "No data",
		ReceivedData: receivedData,
	})
}

// getQueryParams decodes the query string into key → values. Repeated keys
// keep every value in order; blank values are dropped.
func (h *queryEchoHandler) getQueryParams(c *fiber.Ctx) map[string][]string {
	params := make(map[string][]string)
	c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
		if len(v) == 0 {
			return
		}
		key := string(k)
		params[key] = append(params[key], string(v))
	})
	return params
}
