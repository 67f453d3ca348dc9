package http

import (
	"encoding/json"
	"strconv"

	"github.com/NeuralTrust/MailSlot/pkg/common"
	"github.com/NeuralTrust/MailSlot/pkg/domain/email"
	"github.com/NeuralTrust/MailSlot/pkg/handlers/http/response"
	"github.com/NeuralTrust/MailSlot/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var noEmailStoredJSON = strconv.Quote(common.NoEmailStored)

type getEmailHandler struct {
	logger *logrus.Logger
	store  email.Store
}

func NewGetEmailHandler(logger *logrus.Logger, store email.Store) Handler {
	return &getEmailHandler{
		logger: logger,
		store:  store,
	}
}

// Handle @Summary Get the stored email
// @Description Returns the last email received, or a placeholder if none was stored yet
// @Tags Email
// @Produce json
// @Success 200 {object} response.EmailOutput
// @Router /steal-email [get]
func (h *getEmailHandler) Handle(c *fiber.Ctx) error {
	value, ok := h.store.Get()
	if !ok {
		value = noEmailStoredJSON
	}
	prometheus.StoreReads.Inc()

	h.logger.WithField("email", value).Info("Returning email")

	return c.Status(fiber.StatusOK).JSON(response.EmailOutput{
		Status: common.StatusSuccess,
		Email:  json.RawMessage(value),
	})
}
