package middleware

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/MailSlot/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type metricsMiddleware struct{}

func NewMetricsMiddleware() Middleware {
	return &metricsMiddleware{}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()

		err := c.Next()

		method := utils.CopyString(c.Method())
		prometheus.RequestTotal.WithLabelValues(
			method,
			m.getStatusClass(c.Response().StatusCode()),
		).Inc()
		prometheus.RequestLatency.WithLabelValues(method).
			Observe(float64(time.Since(startTime).Milliseconds()))

		return err
	}
}

// getStatusClass returns the status class of a code, e.g. "2xx"
func (m *metricsMiddleware) getStatusClass(code int) string {
	if code < 100 || code > 599 {
		return "5xx"
	}
	return fmt.Sprintf("%dxx", code/100)
}
