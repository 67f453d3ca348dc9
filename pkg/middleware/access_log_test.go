package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/MailSlot/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLogMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectStatus int
		expectLevel  logrus.Level
	}{
		{
			name:         "it should log handled requests at info",
			path:         "/ok?a=1",
			expectStatus: http.StatusOK,
			expectLevel:  logrus.InfoLevel,
		},
		{
			name:         "it should log rejected requests at warn",
			path:         "/bad",
			expectStatus: http.StatusBadRequest,
			expectLevel:  logrus.WarnLevel,
		},
		{
			name:         "it should log failed requests at error",
			path:         "/broken",
			expectStatus: http.StatusInternalServerError,
			expectLevel:  logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			errorHandlerCalls := 0
			app := fiber.New(fiber.Config{
				ErrorHandler: func(c *fiber.Ctx, err error) error {
					errorHandlerCalls++
					return fiber.DefaultErrorHandler(c, err)
				},
			})
			app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
			app.Get("/ok", func(c *fiber.Ctx) error {
				return c.SendString("ok")
			})
			app.Get("/bad", func(c *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusBadRequest, "bad")
			})
			app.Get("/broken", func(c *fiber.Ctx) error {
				return fiber.ErrInternalServerError
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectStatus, resp.StatusCode)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expectLevel, entry.Level)
			assert.Equal(t, tt.path, entry.Data["path"])
			assert.Equal(t, tt.expectStatus, entry.Data["status"])
			assert.Equal(t, http.MethodGet, entry.Data["method"])

			if tt.expectStatus == http.StatusOK {
				assert.Equal(t, 0, errorHandlerCalls)
			} else {
				assert.Equal(t, 1, errorHandlerCalls)
			}
		})
	}
}
