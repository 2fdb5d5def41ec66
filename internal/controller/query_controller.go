package controller

import (
	"strings"

	"neoyngpt-be/internal/dto"
	"neoyngpt-be/internal/pkg/apperror"
	"neoyngpt-be/internal/pkg/serverutils"
	"neoyngpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler)
	Query(ctx *fiber.Ctx) error
	Visualize(ctx *fiber.Ctx) error
}

type queryController struct {
	service service.IQueryService
}

func NewQueryController(service service.IQueryService) IQueryController {
	return &queryController{service: service}
}

func (c *queryController) RegisterRoutes(r fiber.Router, middlewares ...fiber.Handler) {
	h := r.Group("/query/v1", middlewares...)
	h.Post("", c.Query)
	h.Post("/visual", c.Visualize)
}

func (c *queryController) parse(ctx *fiber.Ctx) (*dto.QueryRequest, error) {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Query = strings.TrimSpace(req.Query)

	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Query answers with HTTP 200 even when the result is error-typed so the
// client renders the error panel from the same contract.
func (c *queryController) Query(ctx *fiber.Ctx) error {
	req, err := c.parse(ctx)
	if err != nil {
		return err
	}

	res := c.service.Query(ctx.UserContext(), req.Query)
	if res.Result.IsError() {
		return ctx.JSON(serverutils.FailedResponse(res.Result.Error, res))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process query", res))
}

func (c *queryController) Visualize(ctx *fiber.Ctx) error {
	req, err := c.parse(ctx)
	if err != nil {
		return err
	}
	if req.Query == "" {
		return apperror.NewValidationError("Query cannot be empty")
	}

	res := c.service.Visualize(ctx.UserContext(), req.Query)
	return ctx.JSON(serverutils.SuccessResponse("Success generate visual", res))
}
