package controller

import (
	"strconv"

	"rso-assistant-be/internal/dto"
	"rso-assistant-be/internal/pkg/apperrors"
	"rso-assistant-be/internal/pkg/serverutils"
	"rso-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITransactionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetByClub(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type transactionController struct {
	service service.ITransactionService
}

func NewTransactionController(service service.ITransactionService) ITransactionController {
	return &transactionController{service: service}
}

func (c *transactionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/transaction/v1")
	h.Post("", c.Create)
	h.Get("club/:clubId", c.GetByClub)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *transactionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
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

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create transaction", res))
}

func (c *transactionController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.InvalidInput("transaction id must be a uuid")
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show transaction", res))
}

func (c *transactionController) GetByClub(ctx *fiber.Ctx) error {
	clubId, err := strconv.ParseInt(ctx.Params("clubId"), 10, 64)
	if err != nil {
		return apperrors.InvalidInput("club id must be an integer")
	}

	res, err := c.service.GetByClubId(ctx.Context(), clubId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get club transactions", res))
}

func (c *transactionController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.InvalidInput("transaction id must be a uuid")
	}

	var req dto.CreateTransactionRequest
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

	return ctx.JSON(serverutils.SuccessResponse("Success update transaction", res))
}

func (c *transactionController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.InvalidInput("transaction id must be a uuid")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete transaction", nil))
}
