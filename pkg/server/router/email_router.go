package router

import (
	"github.com/NeuralTrust/MailSlot/pkg/common"
	handlers "github.com/NeuralTrust/MailSlot/pkg/handlers/http"
	"github.com/NeuralTrust/MailSlot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

const CatchAllPath = "/*"

type emailRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewEmailRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &emailRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

// BuildRoutes registers the middleware chain for every request, then the
// email path before each method's catch-all so the exact match wins.
func (r *emailRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	if mws := r.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
		router.Use(mws...)
	}

	router.Options(CatchAllPath, handlerTransport.PreflightHandler.Handle)

	router.Get(common.EmailPath, handlerTransport.GetEmailHandler.Handle)
	router.Get(CatchAllPath, handlerTransport.QueryEchoHandler.Handle)

	router.Post(common.EmailPath, handlerTransport.StoreEmailHandler.Handle)
	router.Post(CatchAllPath, handlerTransport.InvalidEndpointHandler.Handle)

	return nil
}
