package template_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/middleware"
	"github.com/nepemufsc/nepemcert-api/api/model/templateModel"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func GetByUser(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	templates, queryErr := templateModel.GetByUser(userId)
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}

	return response.SendSuccess(c, "Templates retrieved successfully", templates)
}

func GetById(c *fiber.Ctx) error {
	userId, ok := middleware.GetUserFromContext(c)
	if !ok {
		return response.SendUnauthorized(c, "User not authenticated")
	}

	template, queryErr := templateModel.GetById(c.Params("templateId"))
	if queryErr != nil {
		return response.SendInternalError(c, queryErr)
	}
	if template == nil {
		return response.SendFailed(c, "Template not found")
	}
	if template.UserID != userId {
		return response.SendUnauthorized(c, "Template belongs to another user")
	}

	return response.SendSuccess(c, "Template retrieved successfully", template)
}
