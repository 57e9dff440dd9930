package controller

import (
	"cpd-events-be/internal/dto"
	"cpd-events-be/internal/pkg/serverutils"
	"cpd-events-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEditorController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	Layout(ctx *fiber.Ctx) error
	ReportDimensions(ctx *fiber.Ctx) error
	BeginDrag(ctx *fiber.Ctx) error
	MoveDrag(ctx *fiber.Ctx) error
	EndDrag(ctx *fiber.Ctx) error
	SetField(ctx *fiber.Ctx) error
	SetScale(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	FetchPreview(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
}

type editorController struct {
	service service.IEditorService
}

func NewEditorController(service service.IEditorService) IEditorController {
	return &editorController{service: service}
}

func (c *editorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/editor/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("open", c.Open)
	h.Get("preview/:previewId", c.FetchPreview)
	h.Get(":sessionId/layout", c.Layout)
	h.Put(":sessionId/dimensions", c.ReportDimensions)
	h.Post(":sessionId/drag/begin", c.BeginDrag)
	h.Put(":sessionId/drag/move", c.MoveDrag)
	h.Post(":sessionId/drag/end", c.EndDrag)
	h.Put(":sessionId/field", c.SetField)
	h.Put(":sessionId/scale", c.SetScale)
	h.Post(":sessionId/preview", c.Preview)
	h.Post(":sessionId/save", c.Save)
	h.Delete(":sessionId", c.Close)
}

func (c *editorController) Open(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.OpenEditorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Open(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success open editor", res))
}

func (c *editorController) Layout(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.Layout(userId, ctx.Params("sessionId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get layout", res))
}

func (c *editorController) ReportDimensions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ReportDimensionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ReportDimensions(userId, ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success report dimensions", res))
}

func (c *editorController) BeginDrag(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.BeginDragRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.BeginDrag(userId, ctx.Params("sessionId"), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success begin drag", nil))
}

func (c *editorController) MoveDrag(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.MoveDragRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.MoveDrag(userId, ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success move drag", res))
}

func (c *editorController) EndDrag(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.service.EndDrag(userId, ctx.Params("sessionId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success end drag", nil))
}

func (c *editorController) SetField(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SetFieldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetField(userId, ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set field", res))
}

func (c *editorController) SetScale(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SetScaleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetScale(userId, ctx.Params("sessionId"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set scale", res))
}

func (c *editorController) Preview(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.Preview(ctx.Context(), userId, ctx.Params("sessionId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate preview", res))
}

func (c *editorController) FetchPreview(ctx *fiber.Ctx) error {
	data, err := c.service.FetchPreview(ctx.Context(), ctx.Params("previewId"))
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Send(data)
}

func (c *editorController) Save(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.Save(ctx.Context(), userId, ctx.Params("sessionId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save layout", res))
}

func (c *editorController) Close(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.service.Close(userId, ctx.Params("sessionId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success close editor", nil))
}
