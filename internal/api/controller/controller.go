package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/workforce-planner/internal/service/capacity"
)

type Controller struct {
	service *capacity.Service
}

func NewController(service *capacity.Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
