package middleware

import (
	"github.com/NeuralTrust/MailSlot/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

// Middleware turns a panic further down the chain into an InternalError so
// the error handler answers with a 500 envelope and the server keeps going.
func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.WithFields(logrus.Fields{
					"error": r,
					"path":  c.Path(),
				}).Error("HTTP server panic recovered")

				if e, ok := r.(error); ok {
					err = domain.NewInternalError(e)
					return
				}
				err = domain.NewInternalErrorf("%v", r)
			}
		}()

		return c.Next()
	}
}
