package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// HeaderSetter writes headers every response must carry. Error responses
// rendered outside the middleware chain apply them directly.
type HeaderSetter interface {
	SetHeaders(c *fiber.Ctx)
}

// Transport is an ordered middleware chain. The first registered middleware
// is the outermost one.
type Transport struct {
	Middlewares []Middleware
}

func NewTransport(middlewares ...Middleware) *Transport {
	return &Transport{
		Middlewares: middlewares,
	}
}

func (t *Transport) GetMiddlewares() []interface{} {
	handlers := make([]interface{}, 0, len(t.Middlewares))
	for _, middleware := range t.Middlewares {
		handlers = append(handlers, middleware.Middleware())
	}
	return handlers
}

// HeaderSetters returns the registered middlewares that also set response
// headers, in chain order.
func (t *Transport) HeaderSetters() []HeaderSetter {
	var setters []HeaderSetter
	for _, middleware := range t.Middlewares {
		if setter, ok := middleware.(HeaderSetter); ok {
			setters = append(setters, setter)
		}
	}
	return setters
}

func (t *Transport) RegisterMiddleware(middleware Middleware) {
	t.Middlewares = append(t.Middlewares, middleware)
}
