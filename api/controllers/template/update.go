package template_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/templateModel"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func Update(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")

	body := new(payload.UpdateTemplatePayload)
	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Invalid request body")
	}

	existing, queryErr := templateModel.GetById(templateId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if existing == nil {
		return response.SendFailed(c, "Template not found")
	}
	if existing.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	template, updateErr := templateModel.Update(templateId, *body)
	if updateErr != nil {
		return response.SendInternalError(c, updateErr)
	}

	slog.Info("Template updated", "template_id", templateId, "user_id", userId)
	return response.SendSuccess(c, "Template updated successfully", template)
}

func Delete(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templateId := c.Params("templateId")

	existing, queryErr := templateModel.GetById(templateId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if existing == nil {
		return response.SendFailed(c, "Template not found")
	}
	if existing.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	if deleteErr := templateModel.Delete(templateId); deleteErr != nil {
		return response.SendInternalError(c, deleteErr)
	}

	slog.Info("Template deleted", "template_id", templateId, "user_id", userId)
	return response.SendSuccess(c, "Template deleted successfully")
}
