package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ougirez/workforce-planner/internal/pkg/logger"
)

// RequestIDMiddleware tags every request with an id and puts it into the
// request context so service logs carry it.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			ctx := logger.WithFields(c.Request().Context(), "request_id", requestID)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}
