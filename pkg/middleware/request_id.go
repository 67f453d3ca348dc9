package middleware

import (
	"github.com/NeuralTrust/MailSlot/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

type requestIDMiddleware struct{}

func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.SetHeaders(c)
		return c.Next()
	}
}

// SetHeaders assigns the request id once; later calls keep it.
func (m *requestIDMiddleware) SetHeaders(c *fiber.Ctx) {
	if RequestID(c) != "" {
		return
	}
	id := c.Get(common.RequestIDHeader)
	if id == "" || len(id) > maxRequestIDLength {
		id = uuid.New().String()
	} else {
		id = utils.CopyString(id)
	}
	c.Locals(common.RequestIDContextKey, id)
	c.Set(common.RequestIDHeader, id)
}

func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(common.RequestIDContextKey).(string)
	return id
}
