package middleware

import (
	"errors"
	"strings"
	"time"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/internal/metrics"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	AuthorizationHeaderKey = "Authorization"
	UserIDKey              = "user_id"
)

// Accepted authorization schemes, compared case-insensitively.
var authorizationSchemes = []string{"token", "bearer"}

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		MetricsMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// bearerToken extracts the token from an "Authorization: Token <jwt>" or
// "Authorization: Bearer <jwt>" header.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domain.ErrTokenNotFound
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return "", domain.ErrTokenInvalid
	}
	scheme := strings.ToLower(fields[0])
	for _, s := range authorizationSchemes {
		if scheme == s {
			return fields[1], nil
		}
	}
	return "", domain.ErrTokenInvalid
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(AuthorizationHeaderKey))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedAuthRequired, err)
		}

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// OptionalAuthMiddleware identifies the requester when a valid token is
// present and lets the request through anonymously otherwise.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c.Get(AuthorizationHeaderKey))
		if err == nil {
			if userID, err := jwtService.GetUserIDByToken(token); err == nil {
				c.Locals(UserIDKey, userID)
			}
		}
		return c.Next()
	}
}

func (m *middleware) MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		metrics.APIActiveRequests.Inc()
		defer metrics.APIActiveRequests.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		metrics.RecordAPIRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}

// UserID returns the authenticated requester, or 0 for anonymous requests.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}
