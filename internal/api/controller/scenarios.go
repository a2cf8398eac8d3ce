package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/workforce-planner/internal/domain/dto"
)

func (c *Controller) GetScenarios(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.service.ListScenarios())
}

func (c *Controller) EvaluateScenario(ctx echo.Context) error {
	var req dto.EvaluateScenarioRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	result, err := c.service.EvaluateScenario(ctx.Request().Context(), req.ToConfig())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (c *Controller) CompareScenarios(ctx echo.Context) error {
	var req dto.CompareScenariosRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	results, err := c.service.CompareScenarios(ctx.Request().Context(), req.RegionID, req.HorizonMonths, req.IncludeAttrition)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.CompareScenariosResponse{
		RegionID:         req.RegionID,
		HorizonMonths:    req.HorizonMonths,
		IncludeAttrition: req.IncludeAttrition,
		Results:          results,
	})
}
