package controller

import (
	"strconv"

	"rso-assistant-be/internal/dto"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/pkg/serverutils"
	"rso-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IClubController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type clubController struct {
	service service.IClubService
}

func NewClubController(service service.IClubService) IClubController {
	return &clubController{service: service}
}

func (c *clubController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/club/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func clubIdParam(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.InvalidInput("club id must be an integer")
	}
	return id, nil
}

func (c *clubController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateClubRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create club", res))
}

func (c *clubController) Show(ctx *fiber.Ctx) error {
	id, err := clubIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show club", res))
}

func (c *clubController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all clubs", res))
}

func (c *clubController) Update(ctx *fiber.Ctx) error {
	id, err := clubIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateClubRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update club", res))
}

func (c *clubController) Delete(ctx *fiber.Ctx) error {
	id, err := clubIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete club", nil))
}
