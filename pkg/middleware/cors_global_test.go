package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/MailSlot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigins = []string{
	"http://localhost:4000",
	"https://mail1.cselab.nitrkl.in",
	"https://chat-server-l5ni.onrender.com",
}

func newCORSApp(origins []string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewCORSGlobalMiddleware(
		origins,
		[]string{"GET", "POST", "OPTIONS"},
		[]string{"Content-Type"},
	).Middleware())
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "nope")
	})
	return app
}

func TestCORSGlobalMiddleware_AllowOrigin(t *testing.T) {
	tests := []struct {
		name         string
		origin       string
		expectOrigin string
	}{
		{
			name:         "it should echo an allowlisted origin",
			origin:       "https://mail1.cselab.nitrkl.in",
			expectOrigin: "https://mail1.cselab.nitrkl.in",
		},
		{
			name:         "it should echo the last allowlisted origin",
			origin:       "https://chat-server-l5ni.onrender.com",
			expectOrigin: "https://chat-server-l5ni.onrender.com",
		},
		{
			name:         "it should fall back to the first origin for unknown callers",
			origin:       "https://evil.example",
			expectOrigin: "http://localhost:4000",
		},
		{
			name:         "it should fall back when the origin header is absent",
			origin:       "",
			expectOrigin: "http://localhost:4000",
		},
		{
			name:         "it should match origins exactly",
			origin:       "HTTPS://MAIL1.CSELAB.NITRKL.IN",
			expectOrigin: "http://localhost:4000",
		},
		{
			name:         "it should not match a prefix of an allowlisted origin",
			origin:       "https://mail1.cselab.nitrkl.in.evil.example",
			expectOrigin: "http://localhost:4000",
		},
	}

	app := newCORSApp(testOrigins)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.expectOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestCORSGlobalMiddleware_HeadersOnErrors(t *testing.T) {
	app := newCORSApp(testOrigins)

	req := httptest.NewRequest(http.MethodPost, "/fail", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "http://localhost:4000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
}

func TestCORSGlobalMiddleware_EmptyAllowlist(t *testing.T) {
	app := newCORSApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
}
