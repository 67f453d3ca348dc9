package dependency_container

import (
	"github.com/NeuralTrust/MailSlot/pkg/config"
	"github.com/NeuralTrust/MailSlot/pkg/domain/email"
	handlers "github.com/NeuralTrust/MailSlot/pkg/handlers/http"
	"github.com/NeuralTrust/MailSlot/pkg/infra/repository"
	"github.com/NeuralTrust/MailSlot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var (
	corsAllowMethods = []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}
	corsAllowHeaders = []string{fiber.HeaderContentType}
)

type Container struct {
	Store               email.Store
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport *middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// Store overrides the in-memory slot when set.
	Store email.Store
}

func NewContainer(di ContainerDI) (*Container, error) {
	if err := di.Cfg.Validate(); err != nil {
		return nil, err
	}

	store := di.Store
	if store == nil {
		store = repository.NewEmailStore()
	}

	handlerTransport := &handlers.HandlerTransportDTO{
		PreflightHandler:       handlers.NewPreflightHandler(di.Logger),
		GetEmailHandler:        handlers.NewGetEmailHandler(di.Logger, store),
		StoreEmailHandler:      handlers.NewStoreEmailHandler(di.Logger, store),
		QueryEchoHandler:       handlers.NewQueryEchoHandler(di.Logger),
		InvalidEndpointHandler: handlers.NewInvalidEndpointHandler(di.Logger),
		GetVersionHandler:      handlers.NewGetVersionHandler(di.Logger),
	}

	// Outermost first. Access log renders errors, so everything above it
	// sees the final response.
	middlewareTransport := middleware.NewTransport(
		middleware.NewRequestIDMiddleware(),
		middleware.NewSecurityMiddleware(middleware.DefaultSecurityConfig()),
		middleware.NewCORSGlobalMiddleware(di.Cfg.CORS.AllowedOrigins, corsAllowMethods, corsAllowHeaders),
		middleware.NewMetricsMiddleware(),
		middleware.NewAccessLogMiddleware(di.Logger),
		middleware.NewPanicRecoverMiddleware(di.Logger),
	)

	return &Container{
		Store:               store,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}
