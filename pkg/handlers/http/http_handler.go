package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	// Preflight
	PreflightHandler Handler

	// Email slot
	GetEmailHandler   Handler
	StoreEmailHandler Handler

	// Catch-all
	QueryEchoHandler       Handler
	InvalidEndpointHandler Handler

	// Ops
	GetVersionHandler Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
