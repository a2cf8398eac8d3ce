package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/workforce-planner/internal/domain"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	var ce *constants.CodedError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &ce):
		code = ce.Code()
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
