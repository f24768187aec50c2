package controller

import (
	"company-pulse-be/internal/dto"
	"company-pulse-be/internal/pkg/serverutils"
	"company-pulse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	IngestBulk(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("bulk", c.IngestBulk)
	h.Get(":companyId/stats", c.Stats)
}

func (c *activityController) IngestBulk(ctx *fiber.Ctx) error {
	var req dto.IngestActivityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.IngestBulk(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success ingest activity", res))
}

func (c *activityController) Stats(ctx *fiber.Ctx) error {
	companyId, err := uuid.Parse(ctx.Params("companyId"))
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "Invalid company id")
	}

	res, err := c.service.Stats(ctx.Context(), companyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get activity stats", res))
}
