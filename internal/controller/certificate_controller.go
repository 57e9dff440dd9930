package controller

import (
	"cpd-events-be/internal/pkg/serverutils"
	"cpd-events-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICertificateController interface {
	RegisterRoutes(r fiber.Router)
	IssueBatch(ctx *fiber.Ctx) error
	GetByEvent(ctx *fiber.Ctx) error
	Download(ctx *fiber.Ctx) error
}

type certificateController struct {
	service service.ICertificateService
}

func NewCertificateController(service service.ICertificateService) ICertificateController {
	return &certificateController{service: service}
}

func (c *certificateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/certificate/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("event/:eventId/issue", c.IssueBatch)
	h.Get("event/:eventId", c.GetByEvent)
	h.Get(":id/download", c.Download)
}

func (c *certificateController) IssueBatch(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	eventId, _ := uuid.Parse(ctx.Params("eventId"))

	res, err := c.service.IssueBatch(ctx.Context(), userId, eventId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success queue certificate batch", res))
}

func (c *certificateController) GetByEvent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	eventId, _ := uuid.Parse(ctx.Params("eventId"))

	res, err := c.service.GetByEvent(ctx.Context(), userId, eventId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get certificates", res))
}

func (c *certificateController) Download(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, _ := uuid.Parse(ctx.Params("id"))

	filePath, err := c.service.Download(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.SendFile(filePath)
}
