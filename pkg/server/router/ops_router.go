package router

import (
	"net/http"
	"time"

	handlers "github.com/NeuralTrust/MailSlot/pkg/handlers/http"
	"github.com/NeuralTrust/MailSlot/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	MetricsPath = "/metrics"
	HealthPath  = "/health"
	VersionPath = "/version"
)

type opsRouter struct {
	handlerTransport handlers.HandlerTransport
}

func NewOpsRouter(handlerTransport handlers.HandlerTransport) ServerRouter {
	return &opsRouter{
		handlerTransport: handlerTransport,
	}
}

func (r *opsRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(prometheus.Gatherer(), promhttp.HandlerOpts{}),
	)
	router.Get(MetricsPath, func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	router.Get(HealthPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)

	return nil
}
