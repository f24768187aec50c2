package controller

import (
	"company-pulse-be/internal/pkg/serverutils"
	"company-pulse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPulseController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type pulseController struct {
	service service.IPulseService
}

func NewPulseController(service service.IPulseService) IPulseController {
	return &pulseController{service: service}
}

func (c *pulseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pulse/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":companyId/generate", c.Generate)
	h.Get(":companyId", c.List)
}

func (c *pulseController) Generate(ctx *fiber.Ctx) error {
	companyId, err := uuid.Parse(ctx.Params("companyId"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid company id")
	}

	res, err := c.service.GeneratePulse(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate pulse", res))
}

func (c *pulseController) List(ctx *fiber.Ctx) error {
	companyId, err := uuid.Parse(ctx.Params("companyId"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid company id")
	}

	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListPulse(ctx.Context(), companyId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get pulse points", res))
}
