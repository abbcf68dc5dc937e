package controller

import (
	"rso-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Reindex(ctx *fiber.Ctx) error
}

type adminController struct {
	ingest service.IIngestService
}

func NewAdminController(ingest service.IIngestService) IAdminController {
	return &adminController{ingest: ingest}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Post("/reindex", c.Reindex)
}

func (c *adminController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.ingest.Reindex(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
