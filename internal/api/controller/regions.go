package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/workforce-planner/internal/pkg/constants"
)

func (c *Controller) GetRegions(ctx echo.Context) error {
	regions, err := c.service.ListRegions(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, regions)
}

func (c *Controller) GetRegion(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: region id %q", constants.ErrBadRequest, ctx.Param("id"))
	}

	region, err := c.service.GetRegion(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, region)
}
