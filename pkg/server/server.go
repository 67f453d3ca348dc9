package server

import (
	"github.com/NeuralTrust/MailSlot/pkg/config"
	"github.com/NeuralTrust/MailSlot/pkg/middleware"
	"github.com/NeuralTrust/MailSlot/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Server interface defines the common behavior for all servers
type Server interface {
	Name() string
	Run() error
	Shutdown() error
}

type BaseServer struct {
	Config *config.Config
	Logger *logrus.Logger
	Router *fiber.App
}

// NewBaseServer builds the fiber app. headers are applied to every error
// response, including those fasthttp produces before routing.
func NewBaseServer(config *config.Config, logger *logrus.Logger, headers ...middleware.HeaderSetter) *BaseServer {
	r := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Network:               fiber.NetworkTCP,
		EnablePrintRoutes:     false,
		StrictRouting:         true,
		CaseSensitive:         true,
		BodyLimit:             config.Server.BodyLimit,
		ReadTimeout:           config.Server.ReadTimeout,
		WriteTimeout:          config.Server.WriteTimeout,
		ErrorHandler:          NewErrorHandler(logger, headers...),
	})

	r.Server().NoDefaultServerHeader = true
	r.Server().NoDefaultContentType = true

	return &BaseServer{
		Config: config,
		Logger: logger,
		Router: r,
	}
}

func (s *BaseServer) WithRouters(routers ...router.ServerRouter) *BaseServer {
	for _, r := range routers {
		err := r.BuildRoutes(s.Router)
		if err != nil {
			s.Logger.WithError(err).Error("failed to build routes")
		}
	}
	return s
}

func (s *BaseServer) Shutdown() error {
	return s.Router.ShutdownWithTimeout(s.Config.Server.ShutdownTimeout)
}
