package http

import (
	"github.com/NeuralTrust/MailSlot/pkg/common"
	"github.com/NeuralTrust/MailSlot/pkg/domain"
	"github.com/NeuralTrust/MailSlot/pkg/domain/email"
	"github.com/NeuralTrust/MailSlot/pkg/handlers/http/request"
	"github.com/NeuralTrust/MailSlot/pkg/handlers/http/response"
	"github.com/NeuralTrust/MailSlot/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type storeEmailHandler struct {
	logger *logrus.Logger
	store  email.Store
}

func NewStoreEmailHandler(logger *logrus.Logger, store email.Store) Handler {
	return &storeEmailHandler{
		logger: logger,
		store:  store,
	}
}

// Handle @Summary Store an email
// @Description Replaces the stored email with the "email" field of the body
// @Tags Email
// @Accept json
// @Produce json
// @Param request body object true "{\"email\": \"...\"}"
// @Success 200 {object} response.EmailReceivedOutput
// @Failure 400 {object} response.ErrorOutput
// @Failure 500 {object} response.ErrorOutput
// @Router /steal-email [post]
func (h *storeEmailHandler) Handle(c *fiber.Ctx) error {
	req, err := request.ParseEmailRequest(c.Request().Header.ContentLength(), c.Body())
	if err != nil {
		return err
	}

	// The raw request target must match exactly; a query string or an
	// encoded path is a different endpoint.
	if c.OriginalURL() != common.EmailPath {
		h.logger.WithField("uri", utils.CopyString(c.OriginalURL())).Warn("Invalid POST endpoint")
		return domain.ErrInvalidEndpoint
	}

	value, err := req.Email()
	if err != nil {
		return err
	}

	h.store.Set(string(value))
	prometheus.StoreWrites.Inc()

	h.logger.WithField("email", string(value)).Info("Received POST email")

	return c.Status(fiber.StatusOK).JSON(response.EmailReceivedOutput{
		Status:  common.StatusSuccess,
		Message: "Email data received",
		Email:   value,
	})
}
