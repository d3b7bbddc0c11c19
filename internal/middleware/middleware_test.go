package middleware

import (
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"foodgram/internal/metrics"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(jwtService jwt.JWTService) *fiber.App {
	m := NewMiddleware()
	app := fiber.New()
	whoami := func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatUint(uint64(UserID(c)), 10))
	}
	app.Get("/private", m.AuthMiddleware(jwtService), whoami)
	app.Get("/public", m.OptionalAuthMiddleware(jwtService), whoami)
	return app
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		token   string
		wantErr bool
	}{
		{header: "Token abc", token: "abc"},
		{header: "Bearer abc", token: "abc"},
		{header: "bearer abc", token: "abc"},
		{header: "", wantErr: true},
		{header: "abc", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Token a b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := bearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour)
	app := newTestApp(jwtService)
	token := jwtService.GenerateTokenUser(42)

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/private", nil)
		req.Header.Set("Authorization", "Token "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := jwt.NewJWTService("other", time.Hour).GenerateTokenUser(42)
		req := httptest.NewRequest("GET", "/private", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", time.Hour)
	app := newTestApp(jwtService)

	read := func(header string) string {
		req := httptest.NewRequest("GET", "/public", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		buf := make([]byte, 16)
		n, _ := resp.Body.Read(buf)
		return string(buf[:n])
	}

	assert.Equal(t, "0", read(""))
	assert.Equal(t, "0", read("Token garbage"))
	assert.Equal(t, "7", read("Token "+jwtService.GenerateTokenUser(7)))
}

func TestMetricsMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewMiddleware().MetricsMiddleware())
	app.Get("/metered/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusTeapot)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/metered/:id", "418")
	before := testutil.ToFloat64(counter)

	resp, err := app.Test(httptest.NewRequest("GET", "/metered/5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
