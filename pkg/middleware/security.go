package middleware

import (
	"github.com/gofiber/fiber/v2"
)

type SecurityConfig struct {
	ContentTypeNosniff    bool
	FrameOptions          string
	ContentSecurityPolicy string
}

func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		ContentTypeNosniff:    true,
		FrameOptions:          "DENY",
		ContentSecurityPolicy: "default-src 'none'",
	}
}

type securityMiddleware struct {
	cfg SecurityConfig
}

func NewSecurityMiddleware(cfg SecurityConfig) Middleware {
	return &securityMiddleware{
		cfg: cfg,
	}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.SetHeaders(c)
		return c.Next()
	}
}

func (m *securityMiddleware) SetHeaders(c *fiber.Ctx) {
	// X-Content-Type-Options
	if m.cfg.ContentTypeNosniff {
		c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	}

	// X-Frame-Options
	if m.cfg.FrameOptions != "" {
		c.Set(fiber.HeaderXFrameOptions, m.cfg.FrameOptions)
	}

	// Content-Security-Policy
	if m.cfg.ContentSecurityPolicy != "" {
		c.Set(fiber.HeaderContentSecurityPolicy, m.cfg.ContentSecurityPolicy)
	}
}
