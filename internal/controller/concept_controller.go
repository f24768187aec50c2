package controller

import (
	"company-pulse-be/internal/dto"
	"company-pulse-be/internal/pkg/serverutils"
	"company-pulse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConceptController interface {
	RegisterRoutes(r fiber.Router)
	Normalize(ctx *fiber.Ctx) error
	InvalidateCache(ctx *fiber.Ctx) error
}

type conceptController struct {
	service service.IConceptService
}

func NewConceptController(service service.IConceptService) IConceptController {
	return &conceptController{service: service}
}

func (c *conceptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/concept/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("normalize", c.Normalize)
	h.Post("cache/invalidate", serverutils.AdminOnly, c.InvalidateCache)
}

func (c *conceptController) Normalize(ctx *fiber.Ctx) error {
	var req dto.NormalizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Normalize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success normalize label", res))
}

func (c *conceptController) InvalidateCache(ctx *fiber.Ctx) error {
	var req dto.InvalidateCacheRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.InvalidateCache(ctx.Context(), req.Target); err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Cache invalidated", nil))
}
