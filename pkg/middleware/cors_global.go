package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type corsGlobalMiddleware struct {
	allowOrigins []string
	allowed      map[string]struct{}
	allowMethods string
	allowHeaders string
}

// NewCORSGlobalMiddleware sets the CORS response headers on every response.
// An Origin that exactly matches an entry of allowOrigins is echoed back;
// any other Origin, or none, gets allowOrigins[0]. Nothing is rejected:
// enforcement is left to the browser.
func NewCORSGlobalMiddleware(
	allowOrigins []string,
	allowMethods []string,
	allowHeaders []string,
) Middleware {
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, o := range allowOrigins {
		allowed[o] = struct{}{}
	}
	return &corsGlobalMiddleware{
		allowOrigins: allowOrigins,
		allowed:      allowed,
		allowMethods: strings.Join(allowMethods, ", "),
		allowHeaders: strings.Join(allowHeaders, ", "),
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.SetHeaders(c)
		return c.Next()
	}
}

func (m *corsGlobalMiddleware) SetHeaders(c *fiber.Ctx) {
	if origin := m.allowOrigin(c.Get(fiber.HeaderOrigin)); origin != "" {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
	}
	c.Set(fiber.HeaderAccessControlAllowMethods, m.allowMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, m.allowHeaders)
}

func (m *corsGlobalMiddleware) allowOrigin(origin string) string {
	if _, ok := m.allowed[origin]; ok && origin != "" {
		return origin
	}
	if len(m.allowOrigins) == 0 {
		return ""
	}
	return m.allowOrigins[0]
}
