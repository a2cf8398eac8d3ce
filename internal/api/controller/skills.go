package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/workforce-planner/internal/domain/dto"
)

func (c *Controller) GetSkills(ctx echo.Context) error {
	var req dto.ListSkillsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	skills, err := c.service.ListSkills(ctx.Request().Context(), req.OnlyActive)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, skills)
}
