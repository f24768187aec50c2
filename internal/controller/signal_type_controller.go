package controller

import (
	"company-pulse-be/internal/pkg/serverutils"
	"company-pulse-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISignalTypeController interface {
	RegisterRoutes(r fiber.Router)
	GetAllowed(ctx *fiber.Ctx) error
	InvalidateCache(ctx *fiber.Ctx) error
}

type signalTypeController struct {
	service service.ISignalTypeService
}

func NewSignalTypeController(service service.ISignalTypeService) ISignalTypeController {
	return &signalTypeController{service: service}
}

func (c *signalTypeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/signal-type/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("allowed", c.GetAllowed)
	h.Post("cache/invalidate", serverutils.AdminOnly, c.InvalidateCache)
}

func (c *signalTypeController) GetAllowed(ctx *fiber.Ctx) error {
	force := ctx.QueryBool("force", false)

	res, err := c.service.GetAllowed(ctx.Context(), force)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get allowed signal types", res))
}

func (c *signalTypeController) InvalidateCache(ctx *fiber.Ctx) error {
	if err := c.service.InvalidateCache(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Cache invalidated", nil))
}
