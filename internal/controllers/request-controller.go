package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestController struct {
	requestService   services.RequestServiceInterface
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewRequestController(
	requestService services.RequestServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *RequestController {
	return &RequestController{
		requestService:   requestService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := dto.RequestFilter{
		Status:      ctx.QueryParam("status"),
		Type:        ctx.QueryParam("type"),
		EquipmentID: ctx.QueryParam("equipmentId"),
		Limit:       parseUintQuery(ctx, "limit"),
		Offset:      parseUintQuery(ctx, "offset"),
	}

	list, total, err := c.requestService.GetRequests(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, list, "Request list fetched", http.StatusOK, total)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	request, err := c.requestService.FindByID(reqCtx, ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Request found", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.requestService.CreateRequest(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Request created", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.requestService.UpdateRequest(reqCtx, ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Request updated", http.StatusOK)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if err := c.requestService.DeleteRequest(reqCtx, ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Request deleted", http.StatusOK)
}

// MoveRequest drives the workflow; the service decides whether the edge is
// legal and whether the equipment gets scrapped along the way.
func (c *RequestController) MoveRequest(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.MoveRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	request, err := c.requestService.ApplyTransition(reqCtx, ctx.Param("id"), payload.NewStatus, payload.Duration)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, request, "Request moved", http.StatusOK)
}

func (c *RequestController) GetKanban(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.dashboardService.Kanban(), "Kanban board fetched", http.StatusOK)
}

func (c *RequestController) GetCalendar(ctx echo.Context) error {
	days := c.dashboardService.Calendar(ctx.QueryParam("month"))
	return utils.SuccessResponse(ctx, days, "Calendar fetched", http.StatusOK)
}
